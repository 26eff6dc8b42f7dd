package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkotenko/go-todo-web/internal/forms"
	"github.com/dkotenko/go-todo-web/internal/models"
	"github.com/dkotenko/go-todo-web/internal/repository"
)

type todoServiceImpl struct {
	logger zerolog.Logger
	repo   repository.TodoRepository
}

func NewTodoService(
	logger zerolog.Logger,
	repo repository.TodoRepository,
) TodoService {
	return &todoServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *todoServiceImpl) List(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.repo.ListAllOrdered(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to list todos")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(todos)).
		Msg("listed todos")
	return todos, nil
}

func (s *todoServiceImpl) Get(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to get todo")
		return nil, err
	}
	return todo, nil
}

func (s *todoServiceImpl) Create(ctx context.Context, input forms.TodoInput) (*models.Todo, forms.FieldErrors, error) {
	values, fieldErrs := input.Validate()
	if fieldErrs != nil {
		s.logger.Warn().
			Int("error_count", len(fieldErrs)).
			Msg("rejected todo input")
		return nil, fieldErrs, nil
	}

	now := time.Now()
	todo := &models.Todo{
		Title:       values.Title,
		Description: values.Description,
		DueDate:     values.DueDate,
		Resolved:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Insert(ctx, todo)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to create todo")
		return nil, nil, err
	}

	s.logger.Info().
		Int64("todo_id", todo.ID).
		Msg("created todo")
	return todo, nil, nil
}

func (s *todoServiceImpl) Edit(ctx context.Context, id int64, input forms.TodoInput) (*models.Todo, forms.FieldErrors, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to select todo")
		return nil, nil, err
	}

	values, fieldErrs := input.Validate()
	if fieldErrs != nil {
		s.logger.Warn().
			Int64("todo_id", id).
			Int("error_count", len(fieldErrs)).
			Msg("rejected todo input")
		return nil, fieldErrs, nil
	}

	todo.Title = values.Title
	if values.Description != nil {
		todo.Description = values.Description
	}
	todo.DueDate = values.DueDate
	todo.UpdatedAt = time.Now()

	err = s.repo.Update(ctx, todo)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to update todo")
		return nil, nil, err
	}

	s.logger.Info().
		Int64("todo_id", todo.ID).
		Msg("edited todo")
	return todo, nil, nil
}

func (s *todoServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to delete todo")
		return err
	}

	s.logger.Info().
		Int64("todo_id", id).
		Msg("deleted todo")
	return nil
}

func (s *todoServiceImpl) ToggleResolve(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to select todo")
		return nil, err
	}

	todo.Resolved = !todo.Resolved
	todo.UpdatedAt = time.Now()

	err = s.repo.Update(ctx, todo)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			s.logger.Warn().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to update todo")
		return nil, err
	}

	s.logger.Info().
		Int64("todo_id", todo.ID).
		Bool("resolved", todo.Resolved).
		Msg("toggled todo")
	return todo, nil
}

func (s *todoServiceImpl) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	affected, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to bulk delete todos")
		return 0, err
	}

	s.logger.Info().
		Int64("affected", affected).
		Msg("bulk deleted todos")
	return affected, nil
}
