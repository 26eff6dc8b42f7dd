package services

import (
	"context"
	"errors"

	"github.com/dkotenko/go-todo-web/internal/forms"
	"github.com/dkotenko/go-todo-web/internal/models"
)

var ErrTodoNotFound = errors.New("todo not found")

type TodoService interface {
	// List returns every todo ordered ascending by due date, todos
	// without a due date first. The result is re-read from storage
	// on every call.
	List(ctx context.Context) ([]models.Todo, error)

	// Get returns the todo with the given ID.
	//
	// It returns ErrTodoNotFound if no such todo exists.
	Get(ctx context.Context, id int64) (*models.Todo, error)

	// Create validates the input and persists a new todo with
	// resolved=false and both timestamps set to the current time.
	//
	// On rejected input it returns the field errors and persists
	// nothing; the caller redisplays the submitted values.
	Create(ctx context.Context, input forms.TodoInput) (*models.Todo, forms.FieldErrors, error)

	// Edit validates the input and overwrites the title, description
	// and due date of an existing todo, refreshing its updated_at.
	// A description absent from the submission keeps its current
	// value. The resolved flag and created_at are never touched.
	//
	// It returns ErrTodoNotFound if no such todo exists, or the
	// field errors on rejected input; neither persists anything.
	Edit(ctx context.Context, id int64, input forms.TodoInput) (*models.Todo, forms.FieldErrors, error)

	// Delete removes the todo permanently.
	//
	// It returns ErrTodoNotFound if no such todo exists, including
	// when it was already deleted.
	Delete(ctx context.Context, id int64) error

	// ToggleResolve flips the resolved flag of the todo and refreshes
	// its updated_at. Toggling twice restores the original value.
	//
	// It returns ErrTodoNotFound if no such todo exists.
	ToggleResolve(ctx context.Context, id int64) (*models.Todo, error)

	// BulkDelete removes every existing todo from the given set and
	// returns how many were deleted. Unknown IDs are skipped, not
	// reported.
	BulkDelete(ctx context.Context, ids []int64) (int64, error)
}
