package usecase

import (
	"bookshop/internal/entity"
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (entity.User, error)
}
