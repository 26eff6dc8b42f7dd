package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkotenko/go-todo-web/internal/models"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func insertTodo(t *testing.T, repo *MemoryTodoRepository, title string, dueDate *time.Time) *models.Todo {
	t.Helper()

	now := time.Now()
	todo := &models.Todo{
		Title:     title,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Insert(context.Background(), todo); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return todo
}

func TestMemoryIDsNeverReused(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	first := insertTodo(t, repo, "first", nil)
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	second := insertTodo(t, repo, "second", nil)
	if second.ID == first.ID {
		t.Errorf("id %d was reused after deletion", first.ID)
	}
}

func TestMemoryNotFound(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("FindByID: got %v, want ErrTodoNotFound", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Delete: got %v, want ErrTodoNotFound", err)
	}
	if err := repo.Update(ctx, &models.Todo{ID: 42, Title: "x"}); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("Update: got %v, want ErrTodoNotFound", err)
	}
}

func TestMemoryListAllOrdered(t *testing.T) {
	repo := NewMemoryTodoRepository()

	later := insertTodo(t, repo, "later", date(2026, time.March, 1))
	noDate := insertTodo(t, repo, "no date", nil)
	sooner := insertTodo(t, repo, "sooner", date(2026, time.January, 1))
	anotherNoDate := insertTodo(t, repo, "another no date", nil)

	todos, err := repo.ListAllOrdered(context.Background())
	if err != nil {
		t.Fatalf("ListAllOrdered failed: %v", err)
	}

	want := []int64{noDate.ID, anotherNoDate.ID, sooner.ID, later.ID}
	if len(todos) != len(want) {
		t.Fatalf("count: got %d, want %d", len(todos), len(want))
	}
	for i, id := range want {
		if todos[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, todos[i].ID, id)
		}
	}
}

func TestMemoryDeleteByIDs(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	first := insertTodo(t, repo, "first", nil)
	second := insertTodo(t, repo, "second", nil)
	third := insertTodo(t, repo, "third", nil)

	affected, err := repo.DeleteByIDs(ctx, []int64{first.ID, third.ID, 999})
	if err != nil {
		t.Fatalf("DeleteByIDs failed: %v", err)
	}
	if affected != 2 {
		t.Errorf("affected: got %d, want 2", affected)
	}

	todos, err := repo.ListAllOrdered(ctx)
	if err != nil {
		t.Fatalf("ListAllOrdered failed: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != second.ID {
		t.Errorf("remaining todos: got %+v, want only id %d", todos, second.ID)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemoryTodoRepository()
	ctx := context.Background()

	description := "original"
	now := time.Now()
	todo := &models.Todo{
		Title:       "copy check",
		Description: &description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Insert(ctx, todo); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	found, err := repo.FindByID(ctx, todo.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	*found.Description = "mutated"
	found.Title = "mutated"

	again, err := repo.FindByID(ctx, todo.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if again.Title != "copy check" || *again.Description != "original" {
		t.Errorf("stored todo was mutated through a returned copy: %+v", again)
	}
}
