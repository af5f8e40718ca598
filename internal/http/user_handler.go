package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookshop/internal/usecase"

	"github.com/google/uuid"
)

type UserHandler struct {
	authService *usecase.AuthService
}

func NewUserHandler(authService *usecase.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type registerReq struct {
	Username string `json:"username" validate:"required,username,max=50"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password are required", validationErrors)
		return
	}

	if err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyExists):
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Username already exists", nil)
		case errors.Is(err, usecase.ErrInvalidInput):
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid username", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSONSuccessCreated(w, map[string]any{"username": req.Username}, "User registered successfully")
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password required", validationErrors)
		return
	}

	// reuse the client's session id if it already has one, otherwise mint
	// a fresh session
	sessionID := sessionIDFrom(r)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	token, err := h.authService.Login(r.Context(), sessionID, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	JSONSuccess(w, map[string]any{"token": token}, "Login successful")
}

func (h *UserHandler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), sessionIDFrom(r)); err != nil {
		JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "No token provided", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	JSONSuccessNoContent(w)
}
