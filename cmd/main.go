package main

import "github.com/dkotenko/go-todo-web/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()
	app.MustRunMigrations()

	app.MustListenAndServeHTTP()
}
