package usecase

import (
	"bookshop/internal/entity"
	"context"
)

type SessionRepository interface {
	// Put stores the session keyed by its ID, replacing any existing binding.
	Put(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (entity.Session, error)
	Delete(ctx context.Context, id string) error
	CleanupExpired(ctx context.Context) error
}
