package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/models"
)

func TestRequireGuest(t *testing.T) {
	assert.True(t, RequireGuest("").Allowed)
	assert.NoError(t, RequireGuest("").Err())

	d := RequireGuest("alice")
	assert.False(t, d.Allowed)
	require.ErrorIs(t, d.Err(), httperr.ErrForbidden)
}

func TestRequireUser(t *testing.T) {
	assert.True(t, RequireUser("alice").Allowed)

	d := RequireUser("")
	assert.False(t, d.Allowed)
	require.ErrorIs(t, d.Err(), httperr.ErrForbidden)
}

func TestRequireOwner(t *testing.T) {
	recipe := &models.Recipe{Title: "Soup", CreatedBy: "alice"}

	t.Run("owner is allowed", func(t *testing.T) {
		assert.True(t, RequireOwner("alice", recipe).Allowed)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		d := RequireOwner("bob", recipe)
		assert.False(t, d.Allowed)
		require.ErrorIs(t, d.Err(), httperr.ErrForbidden)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		d := RequireOwner("", recipe)
		require.ErrorIs(t, d.Err(), httperr.ErrForbidden)
	})

	t.Run("missing recipe is not found before ownership", func(t *testing.T) {
		d := RequireOwner("alice", nil)
		assert.False(t, d.Allowed)
		require.ErrorIs(t, d.Err(), httperr.ErrNotFound)
	})
}
