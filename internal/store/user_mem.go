package store

import (
	"bookshop/internal/entity"
	"bookshop/internal/usecase"
	"context"
	"sync"
)

// UserMem is the in-memory user directory. Accounts are immutable after
// creation; there is no update or delete path.
type UserMem struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewUserMem() *UserMem {
	return &UserMem{users: make(map[string]entity.User)}
}

func (s *UserMem) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Username]; ok {
		return usecase.ErrAlreadyExists
	}
	s.users[u.Username] = *u
	return nil
}

func (s *UserMem) GetByUsername(_ context.Context, username string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return entity.User{}, usecase.ErrNotFound
	}
	return u, nil
}
