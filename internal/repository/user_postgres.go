package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todoweb/internal/model"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUser(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, userName string) (model.User, error) {
	query := `
		INSERT INTO users (user_name)
		VALUES ($1)
		RETURNING id, user_name, created_at`

	row := r.db.QueryRowContext(ctx, query, userName)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByUserName(ctx context.Context, userName string) (model.User, error) {
	query := `
		SELECT id, user_name, created_at
		FROM users
		WHERE user_name = $1`

	row := r.db.QueryRowContext(ctx, query, userName)
	return scanUser(row)
}

func scanUser(row scannable) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
