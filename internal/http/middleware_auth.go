package http

import (
	"context"
	"errors"
	"net/http"

	"bookshop/internal/usecase"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName carries the session id binding a client to its token.
const SessionCookieName = "session_id"

// AuthMiddleware resolves the caller's identity through the session bound to
// the request's session cookie. A request without a bound session gets 401; a
// session whose token fails verification gets 403.
func AuthMiddleware(authService *usecase.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := authService.Authorize(r.Context(), sessionIDFrom(r))
			if err != nil {
				switch {
				case errors.Is(err, usecase.ErrMissingToken):
					JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided", nil)
				case errors.Is(err, usecase.ErrInvalidToken):
					JSONError(w, http.StatusForbidden, "FORBIDDEN", "Invalid token", nil)
				default:
					JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
				}
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFrom(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// IdentityFrom returns the authenticated username, or "" outside the
// auth middleware.
func IdentityFrom(r *http.Request) string {
	if v, ok := r.Context().Value(identityKey).(string); ok {
		return v
	}
	return ""
}
