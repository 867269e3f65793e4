package route

import (
	"log/slog"

	"inventory-console/internal/authz"
	"inventory-console/internal/session"
)

// Reason tags attached to a sign-in redirect; the sign-in screen uses them to
// pick the message shown to the user.
type Reason string

const (
	ReasonNotAuthenticated Reason = "not_authenticated"
	ReasonSessionExpired   Reason = "session_expired"
)

// Redirect describes a navigation issued by the gate or the expiry responder.
type Redirect struct {
	To        string
	ReturnURL string
	Reason    Reason
	// Replace swaps the current history entry instead of pushing a new one.
	Replace bool
}

// Navigator is the navigation surface the gate drives. Current reports the
// location the user is on, used as the return target for expiry redirects.
type Navigator interface {
	Navigate(Redirect)
	Current() string
}

// Decision is the terminal outcome of a gate check.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Requirement is the set of role names attached to a protected destination.
// Empty means any authenticated user may enter.
type Requirement []string

// Gate is the pre-navigation authorization check. It is stateless per call:
// every decision reads one session snapshot and either allows entry or issues
// exactly one redirect.
type Gate struct {
	session   *session.Store
	nav       Navigator
	routes    map[string]Requirement
	loginPath string
	homePath  string
	logger    *slog.Logger
}

func NewGate(sess *session.Store, nav Navigator, loginPath string, homePath string, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}

	return &Gate{
		session:   sess,
		nav:       nav,
		routes:    map[string]Requirement{},
		loginPath: loginPath,
		homePath:  homePath,
		logger:    logger,
	}
}

// Register marks a destination as protected. No roles means the destination
// only requires authentication; paths never registered are public.
func (g *Gate) Register(path string, roles ...string) {
	g.routes[path] = Requirement(roles)
}

// Check evaluates entry to a destination. Unauthenticated attempts are routed
// to sign-in carrying the requested path; authenticated attempts lacking the
// required role land on the default destination with no message.
func (g *Gate) Check(path string) Decision {
	required, protected := g.routes[path]
	if !protected {
		return Allow
	}

	identity := g.session.Peek()

	if identity == nil {
		g.logger.Debug("entry denied, not authenticated", "path", path)
		g.nav.Navigate(Redirect{
			To:        g.loginPath,
			ReturnURL: path,
			Reason:    ReasonNotAuthenticated,
		})
		return RedirectLogin
	}

	if !authz.HasAnyRole(identity, required) {
		g.logger.Debug("entry denied, insufficient role",
			"path", path, "user", identity.Username, "required", []string(required))
		g.nav.Navigate(Redirect{To: g.homePath})
		return RedirectHome
	}

	return Allow
}
