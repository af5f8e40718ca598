package usecase

import (
	"bookshop/internal/entity"
	"context"
	"strings"
)

// CatalogService exposes the read side of the catalog consumed by the HTTP
// layer. Single-key lookups return ErrNotFound; filters return a possibly
// empty slice instead.
type CatalogService struct {
	bookRepo BookRepository
}

func NewCatalogService(bookRepo BookRepository) *CatalogService {
	return &CatalogService{bookRepo: bookRepo}
}

func (s *CatalogService) List(ctx context.Context) ([]entity.Book, error) {
	return s.bookRepo.List(ctx)
}

func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	return s.bookRepo.GetByISBN(ctx, isbn)
}

// ByAuthor filters by case-insensitive exact author match.
func (s *CatalogService) ByAuthor(ctx context.Context, author string) ([]entity.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Book{}
	for _, b := range books {
		if strings.EqualFold(b.Author, author) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// ByTitle filters by case-insensitive substring title match.
func (s *CatalogService) ByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(title)
	matched := []entity.Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *CatalogService) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	book, err := s.bookRepo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return book.Reviews, nil
}

func (s *CatalogService) Search(ctx context.Context, p SearchParams) ([]entity.Book, error) {
	return s.bookRepo.Search(ctx, p)
}
