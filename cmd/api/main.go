package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	apphttp "bookshop/internal/http"
	"bookshop/internal/store"
	"bookshop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":5000")
	jwtSecret := mustGetEnv("JWT_SECRET")
	tokenTTL := getDurationEnv("TOKEN_TTL", time.Hour)
	sessionTTL := getDurationEnv("SESSION_TTL", 24*time.Hour)
	corsOrigins := splitEnv("CORS_ORIGINS")

	logger := newLogger(getEnv("APP_ENV", "development"))

	bookRepository := store.NewBookMem(store.DefaultCatalog())
	userRepository := store.NewUserMem()
	sessionRepository := store.NewSessionMem()

	authService := usecase.NewAuthService(userRepository, sessionRepository, jwtSecret, tokenTTL, sessionTTL)
	catalogService := usecase.NewCatalogService(bookRepository)
	reviewService := usecase.NewReviewService(bookRepository)

	router := apphttp.NewRouter(apphttp.RouterDeps{
		Auth:        authService,
		Catalog:     catalogService,
		Reviews:     reviewService,
		Logger:      logger,
		CORSOrigins: corsOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sessionJanitor(ctx, logger, sessionRepository, 10*time.Minute)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server is running", "addr", serverAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

// sessionJanitor evicts expired session bindings on a fixed interval.
func sessionJanitor(ctx context.Context, logger *slog.Logger, sessions usecase.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.CleanupExpired(ctx); err != nil {
				logger.Warn("session cleanup failed", "error", err)
			}
		}
	}
}

func newLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("missing required environment variable", "key", key)
	os.Exit(1)
	return ""
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Error("invalid duration", "key", key, "value", v)
		os.Exit(1)
	}
	return d
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
