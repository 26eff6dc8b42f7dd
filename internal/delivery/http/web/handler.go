package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkotenko/go-todo-web/internal/services"
)

type Handler interface {
	HandleRequestIDMiddleware(c *gin.Context)

	HandleListTodos(c *gin.Context)
	HandleCreateTodoForm(c *gin.Context)
	HandleCreateTodo(c *gin.Context)
	HandleEditTodoForm(c *gin.Context)
	HandleEditTodo(c *gin.Context)
	HandleDeleteTodoForm(c *gin.Context)
	HandleDeleteTodo(c *gin.Context)
	HandleResolveTodo(c *gin.Context)
	HandleBulkDeleteTodos(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	todos  services.TodoService
}

func New(
	logger zerolog.Logger,
	todoService services.TodoService,
) Handler {
	return &handlerImpl{
		logger: logger,
		todos:  todoService,
	}
}

// RegisterRoutes mounts the page handlers on the given router. The
// paths mirror the form actions rendered by the templates.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestIDMiddleware)

	router.GET("/", h.HandleListTodos)
	router.GET("/create/", h.HandleCreateTodoForm)
	router.POST("/create/", h.HandleCreateTodo)
	router.GET("/:id/edit/", h.HandleEditTodoForm)
	router.POST("/:id/edit/", h.HandleEditTodo)
	router.GET("/:id/delete/", h.HandleDeleteTodoForm)
	router.POST("/:id/delete/", h.HandleDeleteTodo)
	router.POST("/:id/resolve/", h.HandleResolveTodo)
	router.POST("/bulk-delete/", h.HandleBulkDeleteTodos)
}
