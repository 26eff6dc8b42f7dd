package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkotenko/go-todo-web/internal/forms"
	"github.com/dkotenko/go-todo-web/internal/models"
	"github.com/dkotenko/go-todo-web/internal/services"
)

type todoView struct {
	ID          int64
	Title       string
	Description string
	DueDate     string
	Resolved    bool
}

func newTodoView(todo *models.Todo) todoView {
	view := todoView{
		ID:       todo.ID,
		Title:    todo.Title,
		Resolved: todo.Resolved,
	}
	if todo.Description != nil {
		view.Description = *todo.Description
	}
	if todo.DueDate != nil {
		view.DueDate = todo.DueDate.Format(forms.DueDateLayout)
	}
	return view
}

// todoFormData is the todo_form.html payload: the values to redisplay
// and the field errors keyed by input name.
type todoFormData struct {
	Heading     string
	Action      string
	Title       string
	Description string
	DueDate     string
	Errors      forms.FieldErrors
}

func newTodoFormData(heading, action string, input forms.TodoInput, fieldErrs forms.FieldErrors) todoFormData {
	data := todoFormData{
		Heading: heading,
		Action:  action,
		Title:   input.Title,
		DueDate: input.DueDate,
		Errors:  fieldErrs,
	}
	if input.Description != nil {
		data.Description = *input.Description
	}
	return data
}

// TitleError returns the title validation message, or "" when the
// field was accepted.
func (d todoFormData) TitleError() string {
	if fieldErr, ok := d.Errors["title"]; ok {
		return fieldErr.Message
	}
	return ""
}

// DueDateError returns the due date validation message, or "" when
// the field was accepted.
func (d todoFormData) DueDateError() string {
	if fieldErr, ok := d.Errors["due_date"]; ok {
		return fieldErr.Message
	}
	return ""
}

func editTodoAction(id int64) string {
	return fmt.Sprintf("/%d/edit/", id)
}

func deleteTodoAction(id int64) string {
	return fmt.Sprintf("/%d/delete/", id)
}

func (h *handlerImpl) HandleListTodos(c *gin.Context) {
	todos, err := h.todos.List(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list todos")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	views := make([]todoView, len(todos))
	for i := range todos {
		views[i] = newTodoView(&todos[i])
	}

	c.HTML(http.StatusOK, "home.html", gin.H{"Todos": views})
}

func (h *handlerImpl) HandleCreateTodoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "todo_form.html", todoFormData{
		Heading: "Add Todo",
		Action:  "/create/",
	})
}

func (h *handlerImpl) HandleCreateTodo(c *gin.Context) {
	var input forms.TodoInput
	err := c.ShouldBind(&input)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind form")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	todo, fieldErrs, err := h.todos.Create(c, input)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if fieldErrs != nil {
		c.HTML(http.StatusOK, "todo_form.html",
			newTodoFormData("Add Todo", "/create/", input, fieldErrs))
		return
	}

	h.logger.Info().
		Int64("todo_id", todo.ID).
		Msg("created todo")
	c.Redirect(http.StatusFound, "/")
}

func (h *handlerImpl) HandleEditTodoForm(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.Get(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to get todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	view := newTodoView(todo)
	c.HTML(http.StatusOK, "todo_form.html", todoFormData{
		Heading:     "Edit Todo",
		Action:      editTodoAction(id),
		Title:       view.Title,
		Description: view.Description,
		DueDate:     view.DueDate,
	})
}

func (h *handlerImpl) HandleEditTodo(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var input forms.TodoInput
	err := c.ShouldBind(&input)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind form")
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	todo, fieldErrs, err := h.todos.Edit(c, id, input)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to edit todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if fieldErrs != nil {
		c.HTML(http.StatusOK, "todo_form.html",
			newTodoFormData("Edit Todo", editTodoAction(id), input, fieldErrs))
		return
	}

	h.logger.Info().
		Int64("todo_id", todo.ID).
		Msg("edited todo")
	c.Redirect(http.StatusFound, "/")
}

func (h *handlerImpl) HandleDeleteTodoForm(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.Get(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to get todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "todo_confirm_delete.html", gin.H{
		"Title":  todo.Title,
		"Action": deleteTodoAction(id),
	})
}

func (h *handlerImpl) HandleDeleteTodo(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	err := h.todos.Delete(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to delete todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int64("todo_id", id).
		Msg("deleted todo")
	c.Redirect(http.StatusFound, "/")
}

func (h *handlerImpl) HandleResolveTodo(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.ToggleResolve(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		h.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to toggle todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int64("todo_id", todo.ID).
		Bool("resolved", todo.Resolved).
		Msg("toggled todo")
	c.Redirect(http.StatusFound, "/")
}

func (h *handlerImpl) HandleBulkDeleteTodos(c *gin.Context) {
	selected := c.PostFormArray("selected_todos")

	ids := make([]int64, 0, len(selected))
	for _, raw := range selected {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn().
				Str("id", raw).
				Msg("skipping invalid todo id")
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		affected, err := h.todos.BulkDelete(c, ids)
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to bulk delete todos")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		h.logger.Info().
			Int64("affected", affected).
			Msg("bulk deleted todos")
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *handlerImpl) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn().
			Str("id", raw).
			Msg("invalid todo id")
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}
