package cli

import (
	"fmt"
	"io"
	"sync"

	"inventory-console/internal/route"
)

// consoleNavigator is the terminal stand-in for a browser router. It tracks
// the current destination and turns redirects into the fixed user-facing
// messages: an expired session announces itself, an insufficient-role landing
// stays silent.
type consoleNavigator struct {
	out io.Writer

	mu      sync.Mutex
	current string
	last    *route.Redirect
}

func newConsoleNavigator(out io.Writer) *consoleNavigator {
	return &consoleNavigator{out: out, current: homeRoute}
}

func (n *consoleNavigator) Navigate(r route.Redirect) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.last = &r
	n.current = r.To

	switch r.Reason {
	case route.ReasonSessionExpired:
		fmt.Fprintln(n.out, "session expired, please sign in again")
	case route.ReasonNotAuthenticated:
		fmt.Fprintln(n.out, "please sign in first: inventory-console login")
	}
}

func (n *consoleNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}

// visit records entering a destination the gate allowed.
func (n *consoleNavigator) visit(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = path
}

// lastRedirect returns the most recent redirect, or nil.
func (n *consoleNavigator) lastRedirect() *route.Redirect {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.last
}
