package repository

import (
	"context"
	"errors"

	"github.com/dkotenko/go-todo-web/internal/models"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository is the storage port for todos. The entity is kept
// free of persistence details; implementations assign the ID on
// insert and never reuse it after deletion.
type TodoRepository interface {
	// Insert persists a new todo and assigns its ID.
	Insert(ctx context.Context, todo *models.Todo) error

	// FindByID returns the todo with the given ID or ErrTodoNotFound.
	FindByID(ctx context.Context, id int64) (*models.Todo, error)

	// Update overwrites all mutable columns of the todo identified by
	// todo.ID. It returns ErrTodoNotFound if the row doesn't exist.
	Update(ctx context.Context, todo *models.Todo) error

	// Delete removes the todo permanently. It returns ErrTodoNotFound
	// if the row doesn't exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByIDs removes every existing todo from the given set and
	// returns how many rows were deleted. Unknown IDs are skipped.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	// ListAllOrdered returns every todo ordered ascending by due date,
	// todos without a due date first.
	ListAllOrdered(ctx context.Context) ([]models.Todo, error)
}
