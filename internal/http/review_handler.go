package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	reviews *usecase.ReviewService
}

func NewReviewHandler(reviews *usecase.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type putReviewReq struct {
	Review string `json:"review"`
}

// reviewText reads the review from the JSON body; the legacy `review` query
// parameter is still honored and wins when both are present.
func reviewText(r *http.Request) string {
	if q := r.URL.Query().Get("review"); q != "" {
		return q
	}
	var body putReviewReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ""
	}
	return body.Review
}

func (h *ReviewHandler) PutReview(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r)
	if identity == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided", nil)
		return
	}

	isbn := chi.URLParam(r, "isbn")

	record, err := h.reviews.AddOrUpdate(r.Context(), isbn, identity, reviewText(r))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrInvalidInput):
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Review content required", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSONSuccess(w, record, "Review added/updated successfully")
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r)
	if identity == "" {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided", nil)
		return
	}

	isbn := chi.URLParam(r, "isbn")

	record, err := h.reviews.Delete(r.Context(), isbn, identity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrReviewNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "You have not reviewed this book", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSONSuccess(w, record, "Your review has been deleted successfully")
}
