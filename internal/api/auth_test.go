package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/types"
)

const validBundleJSON = `{
	"access_token": "access-1",
	"refresh_token": "refresh-1",
	"expires_at": "2025-06-01T00:00:00Z",
	"user": {"id": "u1", "email": "dana@example.com", "account_type": "job_seeker", "created_at": "2025-01-01T00:00:00Z"}
}`

func TestLogin_PersistsSession(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(validBundleJSON))
	}))

	bundle, err := client.Auth.Login(context.Background(), &types.LoginRequest{
		Email:    "dana@example.com",
		Password: "hunter2!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-1", bundle.AccessToken)
	assert.Equal(t, "access-1", client.Session().AccessToken())
}

func TestRegister_ValidationFailureLeavesSessionEmpty(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := client.Auth.Register(context.Background(), &types.RegisterRequest{
		Email:       "not-an-email",
		Password:    "short",
		AccountType: "wizard",
	})
	require.Error(t, err)
	assert.Equal(t, 0, calls)
	assert.Empty(t, client.Session().AccessToken())
}

func TestLogout_ClearsSessionEvenWhenBackendFails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	require.NoError(t, client.Session().Set(&types.TokenBundle{AccessToken: "tok"}))

	err := client.Auth.Logout(context.Background())
	assert.Error(t, err, "the backend failure still surfaces")
	assert.Empty(t, client.Session().AccessToken(), "local session is cleared regardless")
}

func TestRefresh_SendsStoredRefreshToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validBundleJSON))
	}))
	require.NoError(t, client.Session().Set(&types.TokenBundle{
		AccessToken:  "old-access",
		RefreshToken: "refresh-0",
	}))

	bundle, err := client.Auth.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", bundle.AccessToken)
	assert.Equal(t, "access-1", client.Session().AccessToken())
}

func TestRefresh_WithoutSessionFailsValidation(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := client.Auth.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, calls, "no refresh token means no network call")
}
