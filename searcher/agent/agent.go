package agent

import (
	"dama/experiments/metrics"
	"dama/game"
)

type Agent interface {
	// FindMove returns the move to play in the position and the search metrics (if collected),
	// or false if the side to move has no legal moves
	FindMove(position game.Position) (game.Move, bool, metrics.SearchMetric)
}
