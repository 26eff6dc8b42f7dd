package app

import (
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dkotenko/go-todo-web/internal/config"
)

func MustRunMigrations() {
	cfg := config.Global().Postgres

	err := goose.SetDialect("postgres")
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to set goose dialect")
		panic(err)
	}

	// goose drives migrations over database/sql, so borrow a stdlib
	// handle from the pgx pool instead of opening a second connection.
	db := stdlib.OpenDBFromPool(globalPostgresPool)
	defer func() { _ = db.Close() }()

	err = goose.Up(db, cfg.MigrationsDir)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("dir", cfg.MigrationsDir).
			Msg("failed to run migrations")
		panic(err)
	}
	globalLogger.Info().
		Str("dir", cfg.MigrationsDir).
		Msg("ran migrations")
}
