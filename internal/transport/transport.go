package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"inventory-console/internal/route"
	"inventory-console/internal/session"
)

// AuthTransport wraps every outbound API call. It attaches the current
// session's bearer token and reacts to an authentication failure (HTTP 401)
// by ending the session and routing the user back to sign-in. The failing
// response still propagates to its caller so local UI can react.
type AuthTransport struct {
	Base      http.RoundTripper
	Session   *session.Store
	Navigator route.Navigator
	LoginPath string
	// AuthPaths are request paths whose 401s never trigger a redirect; a
	// failed sign-in must not loop back into sign-in.
	AuthPaths []string
	Limiter   *rate.Limiter
	Logger    *slog.Logger
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if tok := t.Session.Token(); tok != "" && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !t.isAuthPath(req.URL.Path) {
		t.logger().Debug("session no longer valid", "path", req.URL.Path)
		t.Session.Clear()

		if t.Navigator != nil {
			t.Navigator.Navigate(route.Redirect{
				To:        t.LoginPath,
				ReturnURL: t.Navigator.Current(),
				Reason:    route.ReasonSessionExpired,
				Replace:   true,
			})
		}
	}

	return resp, nil
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}

	return http.DefaultTransport
}

func (t *AuthTransport) isAuthPath(path string) bool {
	for _, authPath := range t.AuthPaths {
		if authPath != "" && strings.Contains(path, authPath) {
			return true
		}
	}

	return false
}

func (t *AuthTransport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}

	return slog.Default()
}
