package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookshop/internal/entity"
	apphttp "bookshop/internal/http"
	"bookshop/internal/store"
	"bookshop/internal/testutil"
	"bookshop/internal/usecase"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testApp struct {
	router   http.Handler
	sessions *store.SessionMem
}

// newTestApp wires the full stack against in-memory stores. A nil seed uses
// the default catalog.
func newTestApp(t *testing.T, seed []entity.Book) *testApp {
	t.Helper()

	if seed == nil {
		seed = store.DefaultCatalog()
	}
	books := store.NewBookMem(seed)
	users := store.NewUserMem()
	sessions := store.NewSessionMem()

	auth := usecase.NewAuthService(users, sessions, testSecret, time.Hour, 24*time.Hour)
	router := apphttp.NewRouter(apphttp.RouterDeps{
		Auth:    auth,
		Catalog: usecase.NewCatalogService(books),
		Reviews: usecase.NewReviewService(books),
	})

	return &testApp{router: router, sessions: sessions}
}

func (a *testApp) do(req *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return testutil.RecordHTTPResponse(w)
}

// login returns the session cookie the login handler handed out.
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == apphttp.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

// registerAndLogin creates the account and logs it in.
func (a *testApp) registerAndLogin(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	resp := a.do(testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
	}))
	require.Equal(t, http.StatusCreated, resp.Code)

	return a.login(t, username, password)
}
