package agent

import (
	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns an agent that plays the best move found by the search.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(position game.Position) (game.Move, bool, metrics.SearchMetric) {
	return a.minimax.FindMove(position.Board, position.ToMove)
}
