package api

import (
	"context"
	"errors"
	"net/http"

	"inventory-console/internal/model"
	"inventory-console/pkg/apierror"
)

// Auth endpoint paths. The expiry responder is configured with LoginPath so
// a rejected sign-in never triggers the 401 redirect.
const (
	LoginPath    = "/api/auth/login"
	RegisterPath = "/api/auth/register"
)

// AuthClient feeds the session store: a successful Login yields the raw token
// the caller commits.
type AuthClient struct {
	client *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{client: c}
}

// Login exchanges credentials for a bearer token. Any rejection from the API
// surfaces as a generic invalid-credentials condition; transport failures
// propagate unchanged.
func (a *AuthClient) Login(ctx context.Context, cred model.Credential) (string, error) {
	var out model.TokenResponse
	if err := a.client.do(ctx, http.MethodPost, LoginPath, nil, cred, &out); err != nil {
		var apiErr *apierror.APIError
		if errors.As(err, &apiErr) {
			return "", apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
		}
		return "", err
	}

	if out.Token == "" {
		return "", apierror.New("UNAUTHORIZED", "invalid credentials", "empty token", http.StatusUnauthorized)
	}

	return out.Token, nil
}

func (a *AuthClient) Register(ctx context.Context, cred model.Credential) error {
	return a.client.do(ctx, http.MethodPost, RegisterPath, nil, cred, nil)
}
