package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// AuthService is the operation catalog for /api/auth. Register, Login and
// Refresh persist the returned token bundle into the session store; Logout
// clears local session state unconditionally, even when the network call fails.
type AuthService struct {
	client *Client
}

// Register creates an account and stores the returned session bundle.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenBundle, error) {
	var bundle types.TokenBundle
	err := s.client.do(ctx, http.MethodPost, "/auth/register", nil, req, "token_bundle", tokenBundleSchema, &bundle)
	if err != nil {
		return nil, err
	}
	if err := s.client.session.Set(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Login authenticates and stores the returned session bundle.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenBundle, error) {
	var bundle types.TokenBundle
	err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, req, "token_bundle", tokenBundleSchema, &bundle)
	if err != nil {
		return nil, err
	}
	if err := s.client.session.Set(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Logout invalidates the session server-side and clears the local bundle.
// The local clear happens regardless of the network outcome, so a dead
// backend can never trap a user in a logged-in state.
func (s *AuthService) Logout(ctx context.Context) error {
	netErr := s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, "", "", nil)
	if clearErr := s.client.session.Clear(); clearErr != nil {
		return clearErr
	}
	return netErr
}

// Me fetches the authenticated account identity.
func (s *AuthService) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, "user", userSchema, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges the stored refresh token for a new bundle and persists it.
func (s *AuthService) Refresh(ctx context.Context) (*types.TokenBundle, error) {
	current := s.client.session.Current()
	req := &types.RefreshRequest{}
	if current != nil {
		req.RefreshToken = current.RefreshToken
	}

	var bundle types.TokenBundle
	err := s.client.do(ctx, http.MethodPost, "/auth/refresh", nil, req, "token_bundle", tokenBundleSchema, &bundle)
	if err != nil {
		return nil, err
	}
	if err := s.client.session.Set(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}
