package usecase

import (
	"bookshop/internal/auth"
	"bookshop/internal/entity"
	"context"
	"errors"
	"strings"
	"time"
)

// AuthService is the session/token authority: it owns registration, login
// (token issuance plus session binding), and authorization of later requests.
type AuthService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	secret      string
	tokenTTL    time.Duration
	sessionTTL  time.Duration
}

func NewAuthService(userRepo UserRepository, sessionRepo SessionRepository, secret string, tokenTTL, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      secret,
		tokenTTL:    tokenTTL,
		sessionTTL:  sessionTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.userRepo.Create(ctx, &entity.User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	})
}

// Login validates credentials, mints a token carrying the username claim, and
// binds it to sessionID. One token per session; re-login overwrites.
func (s *AuthService) Login(ctx context.Context, sessionID, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil || user.Password != password {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.secret, user.Username, s.tokenTTL)
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        sessionID,
		Username:  user.Username,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Put(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// Authorize resolves the identity bound to sessionID. A missing or expired
// session yields ErrMissingToken; a stored token that fails verification
// yields ErrInvalidToken.
func (s *AuthService) Authorize(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrMissingToken
	}
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrMissingToken
		}
		return "", err
	}
	if time.Now().After(session.ExpiresAt) {
		return "", ErrMissingToken
	}

	claims, err := auth.ParseToken(s.secret, session.Token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingToken
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrMissingToken
		}
		return err
	}
	return nil
}
