package searcher

import (
	"dama/game"

	"golang.org/x/exp/slices"
)

// Win is the score of a position whose side to move has no legal moves, from the winner's
// perspective. It exceeds any static evaluation.
const Win = 1_000_000

// Infinity bounds every score the search can produce.
const Infinity = Win + 1

// MinDepth is the shallowest main search; shallower requests are raised to it.
const MinDepth = 1

// orderMoves puts capture chains first, longest first, keeping generation order among equals.
func orderMoves(moves []game.Move) {
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		return len(b.Captures) - len(a.Captures)
	})
}

func captureMoves(board game.Board, side game.Side) []game.Move {
	moves := game.LegalMoves(board, side)
	if len(moves) == 0 || !moves[0].IsCapture() {
		return nil
	}
	return moves
}
