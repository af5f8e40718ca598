package usecase_test

import (
	"context"
	"testing"
	"time"

	"bookshop/internal/store"
	"bookshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "fingerprint_customer"

func newAuthService(tokenTTL, sessionTTL time.Duration) *usecase.AuthService {
	return usecase.NewAuthService(store.NewUserMem(), store.NewSessionMem(), testSecret, tokenTTL, sessionTTL)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "alice", password: "pw"},
		{name: "empty username", username: "", password: "pw", wantErr: usecase.ErrInvalidInput},
		{name: "whitespace username", username: "   ", password: "pw", wantErr: usecase.ErrInvalidInput},
		{name: "empty password", username: "alice", password: "", wantErr: usecase.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(time.Hour, 24*time.Hour)
			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newAuthService(time.Hour, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice", "pw"))
	err := svc.Register(ctx, "alice", "pw")
	assert.ErrorIs(t, err, usecase.ErrAlreadyExists)
}

func TestAuthService_LoginAndAuthorize(t *testing.T) {
	svc := newAuthService(time.Hour, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	token, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Authorize(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(time.Hour, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	_, err := svc.Login(ctx, "sid-1", "alice", "wrong")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "sid-1", "nobody", "pw")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthService_AuthorizeWithoutSession(t *testing.T) {
	svc := newAuthService(time.Hour, 24*time.Hour)

	_, err := svc.Authorize(context.Background(), "")
	assert.ErrorIs(t, err, usecase.ErrMissingToken)

	_, err = svc.Authorize(context.Background(), "never-logged-in")
	assert.ErrorIs(t, err, usecase.ErrMissingToken)
}

func TestAuthService_AuthorizeExpiredToken(t *testing.T) {
	// token already expired at issuance, session itself still alive
	svc := newAuthService(-time.Minute, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	_, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, "sid-1")
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}

func TestAuthService_AuthorizeExpiredSession(t *testing.T) {
	svc := newAuthService(time.Hour, -time.Minute)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	_, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, "sid-1")
	assert.ErrorIs(t, err, usecase.ErrMissingToken)
}

func TestAuthService_ReloginOverwritesToken(t *testing.T) {
	sessions := store.NewSessionMem()
	svc := usecase.NewAuthService(store.NewUserMem(), sessions, testSecret, time.Hour, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	first, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // force a different iat
	second, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	session, err := sessions.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, second, session.Token)
}

func TestAuthService_Logout(t *testing.T) {
	svc := newAuthService(time.Hour, 24*time.Hour)
	ctx := context.Background()
	require.NoError(t, svc.Register(ctx, "alice", "pw"))

	_, err := svc.Login(ctx, "sid-1", "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "sid-1"))
	_, err = svc.Authorize(ctx, "sid-1")
	assert.ErrorIs(t, err, usecase.ErrMissingToken)

	assert.ErrorIs(t, svc.Logout(ctx, "sid-1"), usecase.ErrMissingToken)
}
