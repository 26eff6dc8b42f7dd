package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dkotenko/go-todo-web/internal/models"
)

// MemoryTodoRepository keeps todos in process memory. It backs the
// tests and mirrors the Postgres ordering and not-found semantics,
// including never reusing an ID after deletion.
type MemoryTodoRepository struct {
	mu     sync.Mutex
	todos  map[int64]models.Todo
	nextID int64
}

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{
		todos:  make(map[int64]models.Todo),
		nextID: 1,
	}
}

func (r *MemoryTodoRepository) Insert(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = r.nextID
	r.nextID++
	r.todos[todo.ID] = cloneTodo(*todo)
	return nil
}

func (r *MemoryTodoRepository) FindByID(_ context.Context, id int64) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, ErrTodoNotFound
	}

	clone := cloneTodo(todo)
	return &clone, nil
}

func (r *MemoryTodoRepository) Update(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[todo.ID]; !ok {
		return ErrTodoNotFound
	}

	r.todos[todo.ID] = cloneTodo(*todo)
	return nil
}

func (r *MemoryTodoRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return ErrTodoNotFound
	}

	delete(r.todos, id)
	return nil
}

func (r *MemoryTodoRepository) DeleteByIDs(_ context.Context, ids []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for _, id := range ids {
		if _, ok := r.todos[id]; ok {
			delete(r.todos, id)
			affected++
		}
	}
	return affected, nil
}

func (r *MemoryTodoRepository) ListAllOrdered(_ context.Context) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]models.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, cloneTodo(todo))
	}

	// Ascending by due date with absent dates first, ID as the
	// deterministic tiebreaker. Matches ListAllOrdered in postgres.go.
	sort.Slice(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return a.ID < b.ID
		case a.DueDate == nil:
			return true
		case b.DueDate == nil:
			return false
		case a.DueDate.Equal(*b.DueDate):
			return a.ID < b.ID
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
	return todos, nil
}

func cloneTodo(todo models.Todo) models.Todo {
	if todo.Description != nil {
		description := *todo.Description
		todo.Description = &description
	}
	if todo.DueDate != nil {
		dueDate := *todo.DueDate
		todo.DueDate = &dueDate
	}
	return todo
}
