package usecase

import (
	"bookshop/internal/entity"
	"context"
)

// SearchParams are optional filters combined with AND semantics. Zero-value
// fields are ignored; matching is case-insensitive except for ISBN.
type SearchParams struct {
	ISBN   string
	Title  string
	Author string
}

// BookRepository is the contract for the catalog store. The catalog is
// pre-seeded; books are never created or removed at runtime, only their
// review maps change, and only through UpsertReview/DeleteReview.
type BookRepository interface {
	List(ctx context.Context) ([]entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (entity.Book, error)
	Search(ctx context.Context, p SearchParams) ([]entity.Book, error)
	// UpsertReview sets the review of username on the given book. Insert and
	// overwrite are not distinguished.
	UpsertReview(ctx context.Context, isbn, username, review string) (entity.Book, error)
	// DeleteReview removes username's review and returns the deleted text.
	DeleteReview(ctx context.Context, isbn, username string) (entity.Book, string, error)
}
