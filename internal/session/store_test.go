package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-console/internal/storage"
)

func mintToken(t *testing.T, username string, roles any, expiresAt time.Time) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "42",
		"username": username,
		"role":     roles,
		"exp":      expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestStore(t *testing.T) (*Store, *storage.MemStore) {
	t.Helper()

	mem := storage.NewMemStore()
	return New(mem, nil), mem
}

func TestCommit(t *testing.T) {
	t.Parallel()

	t.Run("valid token establishes the session", func(t *testing.T) {
		store, mem := newTestStore(t)
		raw := mintToken(t, "alice", "Admin", time.Now().Add(time.Hour))

		require.NoError(t, store.Commit(raw))

		identity := store.Peek()
		require.NotNil(t, identity)
		assert.Equal(t, "alice", identity.Username)
		assert.True(t, identity.Roles.Has("admin"))
		assert.Equal(t, raw, store.Token())

		persisted, ok := mem.Get("auth_token")
		require.True(t, ok)
		assert.Equal(t, raw, persisted)
		_, ok = mem.Get("current_user")
		assert.True(t, ok)
	})

	t.Run("expired token is rejected and clears everything", func(t *testing.T) {
		store, mem := newTestStore(t)
		raw := mintToken(t, "alice", "Admin", time.Now().Add(-time.Hour))

		err := store.Commit(raw)
		assert.ErrorIs(t, err, ErrSessionRejected)
		assert.Nil(t, store.Peek())
		_, ok := mem.Get("auth_token")
		assert.False(t, ok)
	})

	t.Run("undecodable token is rejected", func(t *testing.T) {
		store, _ := newTestStore(t)

		err := store.Commit("garbage")
		assert.ErrorIs(t, err, ErrSessionRejected)
		assert.Nil(t, store.Peek())
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	store, mem := newTestStore(t)
	raw := mintToken(t, "alice", "User", time.Now().Add(time.Hour))
	require.NoError(t, store.Commit(raw))

	store.Clear()

	assert.Nil(t, store.Peek())
	assert.Empty(t, store.Token())
	_, ok := mem.Get("auth_token")
	assert.False(t, ok)
	_, ok = mem.Get("current_user")
	assert.False(t, ok)

	// Idempotent when already empty.
	store.Clear()
	assert.Nil(t, store.Peek())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	t.Run("no persisted token leaves state empty", func(t *testing.T) {
		store, _ := newTestStore(t)

		store.Restore()
		assert.Nil(t, store.Peek())
	})

	t.Run("valid persisted token restores the identity", func(t *testing.T) {
		mem := storage.NewMemStore()
		raw := mintToken(t, "alice", []string{"User", "Admin"}, time.Now().Add(time.Hour))
		require.NoError(t, mem.Set("auth_token", raw))

		store := New(mem, nil)
		store.Restore()

		identity := store.Peek()
		require.NotNil(t, identity)
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, []string{"admin", "user"}, identity.Roles.Values())
	})

	t.Run("expired persisted token is wiped", func(t *testing.T) {
		mem := storage.NewMemStore()
		raw := mintToken(t, "alice", "User", time.Now().Add(-time.Minute))
		require.NoError(t, mem.Set("auth_token", raw))

		store := New(mem, nil)
		store.Restore()

		assert.Nil(t, store.Peek())
		_, ok := mem.Get("auth_token")
		assert.False(t, ok)
	})

	t.Run("malformed persisted token is wiped", func(t *testing.T) {
		mem := storage.NewMemStore()
		require.NoError(t, mem.Set("auth_token", "corrupt"))
		require.NoError(t, mem.Set("current_user", `{"id":"42"}`))

		store := New(mem, nil)
		store.Restore()

		assert.Nil(t, store.Peek())
		_, ok := mem.Get("auth_token")
		assert.False(t, ok)
		_, ok = mem.Get("current_user")
		assert.False(t, ok)
	})
}

func TestExpiryBoundary(t *testing.T) {
	t.Parallel()

	// A token expiring exactly at the store's clock reading is rejected.
	at := time.Unix(1_700_000_000, 0)
	store, _ := newTestStore(t)
	store.now = func() time.Time { return at }

	err := store.Commit(mintToken(t, "alice", "User", at))
	assert.ErrorIs(t, err, ErrSessionRejected)

	require.NoError(t, store.Commit(mintToken(t, "alice", "User", at.Add(time.Second))))
	assert.NotNil(t, store.Peek())
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	raw := mintToken(t, "alice", "User", time.Now().Add(time.Hour))

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	// Latest state arrives immediately: anonymous at first.
	assert.Nil(t, <-ch)

	require.NoError(t, store.Commit(raw))
	got := <-ch
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	store.Clear()
	assert.Nil(t, <-ch)
}

func TestSubscribeAfterCommitSeesCurrentState(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.NoError(t, store.Commit(mintToken(t, "alice", "User", time.Now().Add(time.Hour))))

	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	got := <-ch
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
}
