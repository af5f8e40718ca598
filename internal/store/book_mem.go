package store

import (
	"bookshop/internal/entity"
	"bookshop/internal/usecase"
	"context"
	"strings"
	"sync"
)

// BookMem is the in-memory catalog store. It owns every Book record and its
// review map; callers only ever see copies. All mutations go through
// UpsertReview/DeleteReview under the write lock, which serializes concurrent
// review changes for the same (book, user) pair.
type BookMem struct {
	mu    sync.RWMutex
	books map[string]*entity.Book
	order []string // seed order, keeps List output stable
}

func NewBookMem(seed []entity.Book) *BookMem {
	s := &BookMem{books: make(map[string]*entity.Book, len(seed))}
	for i := range seed {
		b := seed[i]
		if b.Reviews == nil {
			b.Reviews = make(map[string]string)
		}
		if _, ok := s.books[b.ISBN]; ok {
			continue
		}
		s.books[b.ISBN] = &b
		s.order = append(s.order, b.ISBN)
	}
	return s
}

func (s *BookMem) List(_ context.Context) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Book, 0, len(s.order))
	for _, isbn := range s.order {
		out = append(out, cloneBook(s.books[isbn]))
	}
	return out, nil
}

func (s *BookMem) GetByISBN(_ context.Context, isbn string) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[isbn]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	return cloneBook(b), nil
}

func (s *BookMem) Search(_ context.Context, p usecase.SearchParams) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entity.Book{}
	for _, isbn := range s.order {
		b := s.books[isbn]
		if p.ISBN != "" && b.ISBN != p.ISBN {
			continue
		}
		if p.Title != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(p.Title)) {
			continue
		}
		if p.Author != "" && !strings.EqualFold(b.Author, p.Author) {
			continue
		}
		out = append(out, cloneBook(b))
	}
	return out, nil
}

func (s *BookMem) UpsertReview(_ context.Context, isbn, username, review string) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return entity.Book{}, usecase.ErrNotFound
	}
	b.Reviews[username] = review
	return cloneBook(b), nil
}

func (s *BookMem) DeleteReview(_ context.Context, isbn, username string) (entity.Book, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return entity.Book{}, "", usecase.ErrNotFound
	}
	deleted, ok := b.Reviews[username]
	if !ok {
		return entity.Book{}, "", usecase.ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return cloneBook(b), deleted, nil
}

func cloneBook(b *entity.Book) entity.Book {
	out := *b
	out.Reviews = make(map[string]string, len(b.Reviews))
	for user, review := range b.Reviews {
		out.Reviews[user] = review
	}
	return out
}
