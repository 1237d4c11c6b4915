package repository

import (
	"context"

	"todoweb/internal/model"
)

// TodoRepository is owner-scoped: every read and write is filtered by the
// owning user's id, so another user's item is indistinguishable from a
// missing one.
type TodoRepository interface {
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	GetByID(ctx context.Context, ownerID, todoID string) (model.Todo, error)
	Update(ctx context.Context, todo model.Todo) (model.Todo, error)
	Delete(ctx context.Context, ownerID, todoID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Todo, error)
}
