package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleSet(t *testing.T) {
	t.Parallel()

	t.Run("insertion normalizes case and whitespace", func(t *testing.T) {
		set := NewRoleSet(" Admin ", "USER", "admin")
		assert.Equal(t, []string{"admin", "user"}, set.Values())
		assert.True(t, set.Has("ADMIN"))
		assert.False(t, set.Has("editor"))
	})

	t.Run("blank names are dropped", func(t *testing.T) {
		set := NewRoleSet("", "  ")
		assert.Empty(t, set.Values())
	})

	t.Run("equal ignores insertion order", func(t *testing.T) {
		assert.True(t, NewRoleSet("a", "b").Equal(NewRoleSet("b", "a")))
		assert.False(t, NewRoleSet("a").Equal(NewRoleSet("a", "b")))
	})

	t.Run("serializes as a sorted array", func(t *testing.T) {
		data, err := json.Marshal(NewRoleSet("user", "admin"))
		require.NoError(t, err)
		assert.JSONEq(t, `["admin","user"]`, string(data))

		var decoded RoleSet
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, decoded.Has("admin"))
	})
}

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	identity := Identity{ID: "42", Username: "alice", Roles: NewRoleSet("Admin")}

	data, err := json.Marshal(identity)
	require.NoError(t, err)

	var decoded Identity
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, identity.ID, decoded.ID)
	assert.True(t, decoded.Roles.Has("admin"))
}
