package http

import (
	"log/slog"
	"net/http"

	"bookshop/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxRequestBody = 1 << 20 // 1 MiB

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Auth        *usecase.AuthService
	Catalog     *usecase.CatalogService
	Reviews     *usecase.ReviewService
	Logger      *slog.Logger
	CORSOrigins []string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	userHandler := NewUserHandler(deps.Auth)
	bookHandler := NewBookHandler(deps.Catalog)
	reviewHandler := NewReviewHandler(deps.Reviews)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if deps.Logger != nil {
		r.Use(RequestLogger(deps.Logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(RequestSizeLimitMiddleware(maxRequestBody))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// public catalog
	r.Get("/books", bookHandler.List)
	r.Get("/isbn/{isbn}", bookHandler.GetByISBN)
	r.Get("/author/{author}", bookHandler.ByAuthor)
	r.Get("/title/{title}", bookHandler.ByTitle)
	r.Get("/review/{isbn}", bookHandler.Reviews)
	r.Get("/search", bookHandler.Search)

	// accounts
	r.Post("/register", userHandler.RegisterUser)
	r.Post("/login", userHandler.LoginUser)
	r.Post("/logout", userHandler.LogoutUser)

	// review mutations require an authorized session
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(deps.Auth))
		r.Put("/review/{isbn}", reviewHandler.PutReview)
		r.Delete("/review/{isbn}", reviewHandler.DeleteReview)
	})

	return r
}
