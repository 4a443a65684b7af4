package gamemaster

import (
	"testing"

	"dama/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("creates sessions with unique ids", func(t *testing.T) {
		r := NewRegistry()
		settings := testSettings(t, config.Easy)

		a := r.Create(settings)
		b := r.Create(settings)

		require.NotEqual(t, a.ID(), b.ID())
		_, err := uuid.Parse(a.ID())
		require.NoError(t, err)
		require.Equal(t, 2, r.Len())
	})

	t.Run("gets a created session", func(t *testing.T) {
		r := NewRegistry()
		created := r.Create(testSettings(t, config.Easy))

		found, err := r.Get(created.ID())

		require.NoError(t, err)
		require.Same(t, created, found)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := NewRegistry().Get("missing")

		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("deleted session is gone", func(t *testing.T) {
		r := NewRegistry()
		created := r.Create(testSettings(t, config.Easy))

		r.Delete(created.ID())

		_, err := r.Get(created.ID())
		require.ErrorIs(t, err, ErrSessionNotFound)
		require.Equal(t, 0, r.Len())
	})
}
