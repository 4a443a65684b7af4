package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	t.Run("counts repeated positions", func(t *testing.T) {
		h := NewHistory()
		start := NewPosition()
		// Two kings shuffling back and forth repeat the position every four plies
		shuffle := Position{
			Board:  Board{}.Place(Blue, King, 7, 0).Place(Yellow, King, 0, 7),
			ToMove: Blue,
		}

		require.Equal(t, 1, h.Record(start))
		require.Equal(t, 1, h.Record(shuffle))

		p := shuffle
		for _, m := range []Move{
			{From: cell(7, 0), To: cell(6, 0)},
			{From: cell(0, 7), To: cell(1, 7)},
			{From: cell(6, 0), To: cell(7, 0)},
			{From: cell(1, 7), To: cell(0, 7)},
		} {
			p = p.Play(m)
			h.Record(p)
		}

		require.Equal(t, p.Hash(), shuffle.Hash())
		require.Equal(t, 3, h.Record(p))
		require.Equal(t, 7, h.Len())
	})
}

func TestAdjudicate(t *testing.T) {
	t.Run("repetition limit draws", func(t *testing.T) {
		require.Equal(t, Draw, Adjudicate(NewPosition(), 3, 3))
	})

	t.Run("repetition below the limit continues", func(t *testing.T) {
		require.Equal(t, NoOutcome, Adjudicate(NewPosition(), 2, 3))
	})

	t.Run("zero limit disables repetition draws", func(t *testing.T) {
		require.Equal(t, NoOutcome, Adjudicate(NewPosition(), 10, 0))
	})

	t.Run("side without moves loses", func(t *testing.T) {
		p := Position{Board: Board{}.Place(Blue, Pawn, 4, 4), ToMove: Yellow}

		require.Equal(t, BlueWins, Adjudicate(p, 1, 3))
	})
}
