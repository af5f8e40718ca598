package store

import (
	"bookshop/internal/entity"
	"bookshop/internal/usecase"
	"context"
	"sync"
	"time"
)

// SessionMem maps session id -> session binding. Put replaces, so a re-login
// under the same session id overwrites the previously held token.
type SessionMem struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewSessionMem() *SessionMem {
	return &SessionMem{sessions: make(map[string]entity.Session)}
}

func (s *SessionMem) Put(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionMem) Get(_ context.Context, id string) (entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return entity.Session{}, usecase.ErrNotFound
	}
	return session, nil
}

func (s *SessionMem) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionMem) CleanupExpired(_ context.Context) error {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	return nil
}
