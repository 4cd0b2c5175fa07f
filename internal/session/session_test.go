package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/types"
)

func testBundle() *types.TokenBundle {
	return &types.TokenBundle{
		AccessToken:  "access-123",
		RefreshToken: "refresh-456",
		ExpiresAt:    time.Now().Add(time.Hour),
		User: types.User{
			ID:          "u1",
			Email:       "seeker@example.com",
			AccountType: types.AccountJobSeeker,
		},
	}
}

func TestMemStore_Lifecycle(t *testing.T) {
	s := NewMemStore()
	assert.Empty(t, s.AccessToken())
	assert.Nil(t, s.Current())

	require.NoError(t, s.Set(testBundle()))
	assert.Equal(t, "access-123", s.AccessToken())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.AccessToken())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	// Loading a missing file is a logged-out state, not an error.
	require.NoError(t, s.Load())
	assert.Empty(t, s.AccessToken())

	require.NoError(t, s.Set(testBundle()))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "access-123", reloaded.AccessToken())
	assert.Equal(t, "seeker@example.com", reloaded.Current().User.Email)
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(testBundle()))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.AccessToken())

	// Clearing twice must not fail.
	require.NoError(t, s.Clear())
}

// unsignedJWT builds a syntactically valid JWT with the given exp claim.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "u1"})
	require.NoError(t, err)
	claims := base64.RawURLEncoding.EncodeToString(payload)
	return fmt.Sprintf("%s.%s.sig", header, claims)
}

func TestExpired_UsesJWTClaim(t *testing.T) {
	now := time.Now()

	fresh := testBundle()
	fresh.AccessToken = unsignedJWT(t, now.Add(time.Hour))
	assert.False(t, Expired(fresh, now))

	stale := testBundle()
	stale.AccessToken = unsignedJWT(t, now.Add(-time.Hour))
	// Bundle-level expiry says fresh, but the JWT claim wins.
	stale.ExpiresAt = now.Add(time.Hour)
	assert.True(t, Expired(stale, now))
}

func TestExpired_FallsBackToBundleExpiry(t *testing.T) {
	now := time.Now()

	b := testBundle()
	b.AccessToken = "opaque-token"
	b.ExpiresAt = now.Add(-time.Minute)
	assert.True(t, Expired(b, now))

	b.ExpiresAt = now.Add(time.Minute)
	assert.False(t, Expired(b, now))

	assert.True(t, Expired(nil, now))
}
