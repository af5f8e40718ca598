package http_test

import (
	"net/http"
	"strings"
	"testing"

	"bookshop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{name: "success", body: map[string]string{"username": "alice", "password": "pw"}, wantStatus: http.StatusCreated},
		{name: "missing username", body: map[string]string{"password": "pw"}, wantStatus: http.StatusBadRequest},
		{name: "missing password", body: map[string]string{"username": "alice"}, wantStatus: http.StatusBadRequest},
		{name: "whitespace username", body: map[string]string{"username": "   ", "password": "pw"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil)
			resp := app.do(testutil.NewRequest(http.MethodPost, "/register", tt.body))
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestRegisterUser_InvalidBody(t *testing.T) {
	app := newTestApp(t, nil)

	resp := app.do(testutil.NewRequest(http.MethodPost, "/register", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	app := newTestApp(t, nil)
	body := map[string]string{"username": "alice", "password": "pw"}

	resp := app.do(testutil.NewRequest(http.MethodPost, "/register", body))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = app.do(testutil.NewRequest(http.MethodPost, "/register", body))
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLoginUser(t *testing.T) {
	app := newTestApp(t, nil)
	resp := app.do(testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": "alice", "password": "pw",
	}))
	require.Equal(t, http.StatusCreated, resp.Code)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{name: "success", body: map[string]string{"username": "alice", "password": "pw"}, wantStatus: http.StatusOK},
		{name: "wrong password", body: map[string]string{"username": "alice", "password": "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", body: map[string]string{"username": "bob", "password": "pw"}, wantStatus: http.StatusUnauthorized},
		{name: "missing fields", body: map[string]string{"username": "alice"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.do(testutil.NewRequest(http.MethodPost, "/login", tt.body))
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestLoginUser_ReturnsTokenAndCookie(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.registerAndLogin(t, "alice", "pw")

	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginUser_TokenCarriesUsernameClaim(t *testing.T) {
	app := newTestApp(t, nil)
	resp := app.do(testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": "alice", "password": "pw",
	}))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = app.do(testutil.NewRequest(http.MethodPost, "/login", map[string]string{
		"username": "alice", "password": "pw",
	}))
	require.Equal(t, http.StatusOK, resp.Code)

	data, ok := resp.Body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	// well-formed JWT: three dot-separated segments
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestLogoutUser(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.registerAndLogin(t, "alice", "pw")

	req := testutil.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	resp := app.do(req)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	// the session is gone, protected routes reject the old cookie
	req = testutil.NewRequest(http.MethodPut, "/review/1?review=Great", nil)
	req.AddCookie(cookie)
	resp = app.do(req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogoutUser_WithoutSession(t *testing.T) {
	app := newTestApp(t, nil)

	resp := app.do(testutil.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
