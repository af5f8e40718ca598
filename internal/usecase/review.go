package usecase

import (
	"context"
	"strings"
)

// ReviewRecord confirms a review mutation back to the caller.
type ReviewRecord struct {
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Username string `json:"username"`
	Review   string `json:"review"`
}

// ReviewService is the only component that mutates review maps. Callers must
// pass an identity previously resolved by AuthService.Authorize.
type ReviewService struct {
	bookRepo BookRepository
}

func NewReviewService(bookRepo BookRepository) *ReviewService {
	return &ReviewService{bookRepo: bookRepo}
}

// AddOrUpdate sets identity's review on the book. Insert and overwrite are
// the same operation; other users' entries are untouched.
func (s *ReviewService) AddOrUpdate(ctx context.Context, isbn, identity, review string) (ReviewRecord, error) {
	if strings.TrimSpace(review) == "" {
		return ReviewRecord{}, ErrInvalidInput
	}

	book, err := s.bookRepo.UpsertReview(ctx, isbn, identity, review)
	if err != nil {
		return ReviewRecord{}, err
	}
	return ReviewRecord{
		ISBN:     book.ISBN,
		Title:    book.Title,
		Username: identity,
		Review:   review,
	}, nil
}

// Delete removes exactly identity's review and returns the deleted text.
func (s *ReviewService) Delete(ctx context.Context, isbn, identity string) (ReviewRecord, error) {
	book, deleted, err := s.bookRepo.DeleteReview(ctx, isbn, identity)
	if err != nil {
		return ReviewRecord{}, err
	}
	return ReviewRecord{
		ISBN:     book.ISBN,
		Title:    book.Title,
		Username: identity,
		Review:   deleted,
	}, nil
}
