package usecase

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("no token bound to session")
	ErrInvalidToken       = errors.New("invalid token")
)
