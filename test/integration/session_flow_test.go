package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-console/internal/api"
	"inventory-console/internal/model"
	"inventory-console/internal/route"
	"inventory-console/internal/session"
	"inventory-console/internal/storage"
	"inventory-console/internal/transport"
	"inventory-console/pkg/apierror"
)

type recordingNavigator struct {
	current   string
	redirects []route.Redirect
}

func (n *recordingNavigator) Navigate(r route.Redirect) {
	n.redirects = append(n.redirects, r)
	n.current = r.To
}

func (n *recordingNavigator) Current() string { return n.current }

type harness struct {
	session *session.Store
	gate    *route.Gate
	nav     *recordingNavigator
	auth    *api.AuthClient
	devices *api.DeviceClient
}

func newHarness(t *testing.T, f *fakeAPI) *harness {
	t.Helper()

	server := f.start()

	sess := session.New(storage.NewMemStore(), nil)
	nav := &recordingNavigator{current: "/dashboard/inventory"}

	gate := route.NewGate(sess, nav, "/login", "/dashboard", nil)
	gate.Register("/dashboard")
	gate.Register("/dashboard/inventory", "user")
	gate.Register("/dashboard/admin", "admin")

	rt := &transport.AuthTransport{
		Session:   sess,
		Navigator: nav,
		LoginPath: "/login",
		AuthPaths: []string{api.LoginPath, api.RegisterPath},
	}

	client := api.New(server.URL, rt, 5*time.Second, nil)

	return &harness{
		session: sess,
		gate:    gate,
		nav:     nav,
		auth:    api.NewAuthClient(client),
		devices: api.NewDeviceClient(client),
	}
}

func TestLoginGrantsAccess(t *testing.T) {
	t.Parallel()

	h := newHarness(t, newFakeAPI(t))

	token, err := h.auth.Login(context.Background(), model.Credential{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, h.session.Commit(token))

	identity := h.session.Peek()
	require.NotNil(t, identity)
	assert.Equal(t, []string{"admin"}, identity.Roles.Values())

	assert.Equal(t, route.Allow, h.gate.Check("/dashboard/admin"))

	list, err := h.devices.List(context.Background(), model.DeviceQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestBadCredentialsLeaveSessionEmpty(t *testing.T) {
	t.Parallel()

	h := newHarness(t, newFakeAPI(t))

	_, err := h.auth.Login(context.Background(), model.Credential{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	assert.Nil(t, h.session.Peek())
	// A rejected sign-in must not trigger the expiry redirect.
	assert.Empty(t, h.nav.redirects)
}

func TestAlreadyExpiredTokenIsRejectedAtCommit(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.tokenTTL = -time.Minute
	h := newHarness(t, f)

	token, err := h.auth.Login(context.Background(), model.Credential{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	err = h.session.Commit(token)
	assert.ErrorIs(t, err, session.ErrSessionRejected)
	assert.Nil(t, h.session.Peek())
}

func TestExpiredSessionIsClearedAndRedirected(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.tokenTTL = 2 * time.Second
	h := newHarness(t, f)

	token, err := h.auth.Login(context.Background(), model.Credential{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, h.session.Commit(token))

	h.nav.current = "/dashboard/inventory"

	// Wait until the server no longer accepts the token.
	time.Sleep(3 * time.Second)

	_, err = h.devices.List(context.Background(), model.DeviceQuery{})
	require.Error(t, err)
	assert.True(t, apierror.IsAuthFailure(err))

	assert.Nil(t, h.session.Peek())
	require.Len(t, h.nav.redirects, 1)
	redirect := h.nav.redirects[0]
	assert.Equal(t, "/login", redirect.To)
	assert.Equal(t, "/dashboard/inventory", redirect.ReturnURL)
	assert.Equal(t, route.ReasonSessionExpired, redirect.Reason)
	assert.True(t, redirect.Replace)

	// The next gate check routes through sign-in again.
	assert.Equal(t, route.RedirectLogin, h.gate.Check("/dashboard/inventory"))
}

func TestRoleGatingAfterLogin(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.roles = []string{"User"}
	h := newHarness(t, f)

	token, err := h.auth.Login(context.Background(), model.Credential{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, h.session.Commit(token))

	assert.Equal(t, route.Allow, h.gate.Check("/dashboard/inventory"))
	assert.Equal(t, route.RedirectHome, h.gate.Check("/dashboard/admin"))
}
