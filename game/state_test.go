package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("play passes the turn", func(t *testing.T) {
		position := NewPosition()
		move := position.LegalMoves()[0]

		next := position.Play(move)

		require.Equal(t, Yellow, next.Player())
		require.Equal(t, Blue, position.Player(), "Receiver should not change")
	})

	t.Run("side without moves has lost", func(t *testing.T) {
		position := Position{
			Board:  Board{}.Place(Yellow, Pawn, 3, 3),
			ToMove: Blue,
		}

		winner, over := position.Winner()

		require.True(t, over)
		require.Equal(t, Yellow, winner)
	})

	t.Run("blocked pawn has no moves", func(t *testing.T) {
		position := Position{
			Board: Board{}.
				Place(Blue, Pawn, 0, 0).
				Place(Yellow, Pawn, 0, 1).
				Place(Yellow, Pawn, 0, 2),
			ToMove: Blue,
		}

		require.Empty(t, position.LegalMoves())
	})

	t.Run("game in progress has no winner", func(t *testing.T) {
		_, over := NewPosition().Winner()

		require.False(t, over)
	})
}

func TestPositionHash(t *testing.T) {
	t.Run("same arrangement hashes equally regardless of piece identity", func(t *testing.T) {
		a := Position{Board: Board{}.Place(Blue, Pawn, 4, 4), ToMove: Blue}
		b := Position{Board: Board{}.Place(Blue, Pawn, 3, 4), ToMove: Blue}
		b = Position{Board: ApplyMove(b.Board, Move{From: cell(3, 4), To: cell(4, 4)}), ToMove: Blue}

		require.NotEqual(t, a.Board[4][4].ID, b.Board[4][4].ID)
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("side to move changes the hash", func(t *testing.T) {
		a := NewPosition()
		b := a
		b.ToMove = Yellow

		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("rank changes the hash", func(t *testing.T) {
		a := Position{Board: Board{}.Place(Blue, Pawn, 4, 4)}
		b := Position{Board: Board{}.Place(Blue, King, 4, 4)}

		require.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestMoveEncoding(t *testing.T) {
	t.Run("capture moves carry path and captures", func(t *testing.T) {
		move := Move{
			From:     cell(4, 3),
			To:       cell(2, 3),
			Path:     []Cell{cell(2, 3)},
			Captures: []Cell{cell(3, 3)},
		}

		data, err := json.Marshal(move)

		require.NoError(t, err)
		require.JSONEq(t,
			`{"from":{"row":4,"col":3},"to":{"row":2,"col":3},"path":[{"row":2,"col":3}],"captures":[{"row":3,"col":3}]}`,
			string(data))
		require.Equal(t, "4,3x2,3", move.String())
	})

	t.Run("steps omit path and captures", func(t *testing.T) {
		data, err := json.Marshal(Move{From: cell(5, 0), To: cell(4, 0)})

		require.NoError(t, err)
		require.JSONEq(t, `{"from":{"row":5,"col":0},"to":{"row":4,"col":0}}`, string(data))
	})

	t.Run("sides and ranks encode as words", func(t *testing.T) {
		data, err := json.Marshal(Piece{ID: "x", Side: Yellow, Rank: King})
		require.NoError(t, err)
		require.JSONEq(t, `{"id":"x","side":"yellow","rank":"king","row":0,"col":0}`, string(data))

		var side Side
		require.NoError(t, json.Unmarshal([]byte(`"blue"`), &side))
		require.Equal(t, Blue, side)
		require.Error(t, json.Unmarshal([]byte(`"green"`), &side))
	})

	t.Run("equal compares chains element by element", func(t *testing.T) {
		a := Move{From: cell(0, 0), To: cell(0, 4), Path: []Cell{cell(0, 2), cell(0, 4)}, Captures: []Cell{cell(0, 1), cell(0, 3)}}
		b := Move{From: cell(0, 0), To: cell(0, 4), Path: []Cell{cell(0, 2), cell(0, 4)}, Captures: []Cell{cell(0, 1), cell(0, 3)}}
		c := Move{From: cell(0, 0), To: cell(0, 4)}

		require.True(t, a.Equal(b))
		require.False(t, a.Equal(c))
	})
}
