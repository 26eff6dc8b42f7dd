package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dkotenko/go-todo-web/internal/models"
)

type PGTodoRepository struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPGTodoRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) *PGTodoRepository {
	return &PGTodoRepository{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *PGTodoRepository) Insert(ctx context.Context, todo *models.Todo) error {
	const insertTodoQuery = `
INSERT INTO todos (title,
                   description,
                   due_date,
                   resolved,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	err := r.pgPool.QueryRow(
		ctx,
		insertTodoQuery,
		todo.Title,
		todo.Description,
		todo.DueDate,
		todo.Resolved,
		todo.CreatedAt,
		todo.UpdatedAt,
	).Scan(&todo.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert todo")
		return err
	}

	r.logger.Debug().
		Int64("todo_id", todo.ID).
		Msg("inserted todo")
	return nil
}

func (r *PGTodoRepository) FindByID(ctx context.Context, id int64) (*models.Todo, error) {
	todo := &models.Todo{ID: id}

	const selectTodoByIDQuery = `
SELECT title,
       description,
       due_date,
       resolved,
       created_at,
       updated_at
FROM todos
WHERE id = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectTodoByIDQuery,
		todo.ID,
	).Scan(
		&todo.Title,
		&todo.Description,
		&todo.DueDate,
		&todo.Resolved,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Int64("todo_id", id).
				Msg("todo not found")
			return nil, ErrTodoNotFound
		}

		r.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to select todo by id")
		return nil, err
	}

	r.logger.Debug().
		Int64("todo_id", todo.ID).
		Msg("selected todo by id")
	return todo, nil
}

func (r *PGTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	const updateTodoQuery = `
UPDATE todos
SET title = $1,
    description = $2,
    due_date = $3,
    resolved = $4,
    updated_at = $5
WHERE id = $6
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateTodoQuery,
		todo.Title,
		todo.Description,
		todo.DueDate,
		todo.Resolved,
		todo.UpdatedAt,
		todo.ID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("todo_id", todo.ID).
			Msg("failed to update todo")
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug().
			Int64("todo_id", todo.ID).
			Msg("todo not found")
		return ErrTodoNotFound
	}

	r.logger.Debug().
		Int64("todo_id", todo.ID).
		Msg("updated todo")
	return nil
}

func (r *PGTodoRepository) Delete(ctx context.Context, id int64) error {
	const deleteTodoQuery = `
DELETE FROM todos
WHERE id = $1
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTodoQuery,
		id,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("todo_id", id).
			Msg("failed to delete todo")
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug().
			Int64("todo_id", id).
			Msg("todo not found")
		return ErrTodoNotFound
	}

	r.logger.Debug().
		Int64("todo_id", id).
		Msg("deleted todo")
	return nil
}

func (r *PGTodoRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	const deleteTodosByIDsQuery = `
DELETE FROM todos
WHERE id = ANY($1)
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTodosByIDsQuery,
		ids,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Ints64("todo_ids", ids).
			Msg("failed to delete todos by ids")
		return 0, err
	}

	r.logger.Debug().
		Ints64("todo_ids", ids).
		Int64("affected", tag.RowsAffected()).
		Msg("deleted todos by ids")
	return tag.RowsAffected(), nil
}

func (r *PGTodoRepository) ListAllOrdered(ctx context.Context) ([]models.Todo, error) {
	const selectAllTodosQuery = `
SELECT id,
       title,
       description,
       due_date,
       resolved,
       created_at,
       updated_at
FROM todos
ORDER BY due_date ASC NULLS FIRST, id ASC
`
	rows, err := r.pgPool.Query(ctx, selectAllTodosQuery)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select todos")
		return nil, err
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var todo models.Todo
		err = rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.DueDate,
			&todo.Resolved,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan todo")
			return nil, err
		}
		todos = append(todos, todo)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(todos)).
		Msg("selected todos")
	return todos, nil
}
