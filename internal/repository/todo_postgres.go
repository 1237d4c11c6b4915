package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todoweb/internal/model"
)

type PostgresTodoRepository struct {
	db *sql.DB
}

func NewPostgresTodo(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `
		INSERT INTO todos (owner_id, todo_title, todo_text, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, todo_title, todo_text, end_time, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		todo.OwnerID, todo.Title, todo.Text, todo.EndTime,
	)

	return scanTodo(row)
}

func (r *PostgresTodoRepository) GetByID(ctx context.Context, ownerID, todoID string) (model.Todo, error) {
	query := `
		SELECT id, owner_id, todo_title, todo_text, end_time, created_at, updated_at
		FROM todos
		WHERE id = $1 AND owner_id = $2`

	row := r.db.QueryRowContext(ctx, query, todoID, ownerID)
	return scanTodo(row)
}

func (r *PostgresTodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	query := `
		UPDATE todos
		SET todo_title = $1, todo_text = $2, end_time = $3, updated_at = now()
		WHERE id = $4 AND owner_id = $5
		RETURNING id, owner_id, todo_title, todo_text, end_time, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Text, todo.EndTime, todo.ID, todo.OwnerID,
	)

	return scanTodo(row)
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, ownerID, todoID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, todoID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListByOwner returns the owner's full collection ordered by end_time
// ascending with undated items last, creation order breaking ties.
func (r *PostgresTodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error) {
	query := `
		SELECT id, owner_id, todo_title, todo_text, end_time, created_at, updated_at
		FROM todos
		WHERE owner_id = $1
		ORDER BY end_time ASC NULLS LAST, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		todo, err := scanTodoFromRows(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTodo(row scannable) (model.Todo, error) {
	var t model.Todo
	var endTime sql.NullTime
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Text,
		&endTime, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	if endTime.Valid {
		t.EndTime = &endTime.Time
	}
	return t, nil
}

func scanTodoFromRows(rows *sql.Rows) (model.Todo, error) {
	var t model.Todo
	var endTime sql.NullTime
	err := rows.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Text,
		&endTime, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to scan todo row: %w", err)
	}
	if endTime.Valid {
		t.EndTime = &endTime.Time
	}
	return t, nil
}

// ensure compile-time interface compliance
var _ TodoRepository = (*PostgresTodoRepository)(nil)
