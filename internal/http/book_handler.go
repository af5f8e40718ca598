package http

import (
	"errors"
	"net/http"
	"net/url"

	"bookshop/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	catalog *usecase.CatalogService
}

func NewBookHandler(catalog *usecase.CatalogService) *BookHandler {
	return &BookHandler{catalog: catalog}
}

// pathParam reads a chi URL param; author and title segments may arrive
// percent-encoded.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, books, "")
}

func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	book, err := h.catalog.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, book, "")
}

func (h *BookHandler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	author := pathParam(r, "author")

	books, err := h.catalog.ByAuthor(r.Context(), author)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if len(books) == 0 {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "No books found by this author", nil)
		return
	}
	JSONSuccess(w, books, "")
}

func (h *BookHandler) ByTitle(w http.ResponseWriter, r *http.Request) {
	title := pathParam(r, "title")

	books, err := h.catalog.ByTitle(r.Context(), title)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if len(books) == 0 {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "No books found with this title", nil)
		return
	}
	JSONSuccess(w, books, "")
}

func (h *BookHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	reviews, err := h.catalog.Reviews(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, reviews, "")
}

// Search combines optional isbn/title/author filters with AND semantics.
// An empty result is 200 with an empty list, never 404.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := usecase.SearchParams{
		ISBN:   query.Get("isbn"),
		Title:  query.Get("title"),
		Author: query.Get("author"),
	}

	books, err := h.catalog.Search(r.Context(), params)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, books, "")
}
