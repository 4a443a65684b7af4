package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("returns the first match", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]int{1, 4, 4}, func(v int) bool { return v == 4 }))
	})

	t.Run("returns -1 without a match", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]string{"a"}, func(v string) bool { return v == "b" }))
		require.Equal(t, -1, FindIndex(nil, func(v string) bool { return true }))
	})
}
