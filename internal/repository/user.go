package repository

import (
	"context"

	"todoweb/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, userName string) (model.User, error)
	GetByUserName(ctx context.Context, userName string) (model.User, error)
}
