package searcher

import (
	"dama/experiments/metrics"
	"dama/game"
)

type Option func(m *Minimax)

// Minimax searches a fixed number of plies with alpha-beta pruning and extends the horizon with
// a capture-only quiescence search. It keeps no game state between calls.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= MinDepth {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    MinDepth,
		evaluate: game.EvaluatePosition,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// SelectMove returns the best move for side found by a depth-limited search, or false if side
// has no legal moves.
func SelectMove(board game.Board, side game.Side, depth int) (game.Move, bool) {
	move, ok, _ := NewMinimax(WithDepth(depth)).FindMove(board, side)
	return move, ok
}

// FindMove searches from side's point of view: side maximizes the evaluation, its opponent
// minimizes it. The result is deterministic for a given board, side and depth.
func (m *Minimax) FindMove(board game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric) {
	m.metrics.Start(m.depth)

	s := &search{root: side, evaluate: m.evaluate, metrics: m.metrics}
	score, move, ok := s.minimax(board, m.depth, -Infinity, Infinity, true)

	return move, ok, m.metrics.Complete(score)
}

type search struct {
	root     game.Side
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func (s *search) sideToMove(maximizing bool) game.Side {
	if maximizing {
		return s.root
	}
	return s.root.Opponent()
}

func (s *search) minimax(board game.Board, depth, alpha, beta int, maximizing bool) (int, game.Move, bool) {
	s.metrics.AddNode()

	moves := game.LegalMoves(board, s.sideToMove(maximizing))

	// The side to move has lost
	if len(moves) == 0 {
		if maximizing {
			return -Win, game.Move{}, false
		}
		return Win, game.Move{}, false
	}

	if depth <= 0 {
		return s.quiescence(board, alpha, beta, maximizing), game.Move{}, false
	}

	orderMoves(moves)

	var bestMove game.Move
	if maximizing {
		maxEval := -Infinity
		for _, move := range moves {
			eval, _, _ := s.minimax(game.ApplyMove(board, move), depth-1, alpha, beta, false)
			if eval > maxEval {
				maxEval = eval
				bestMove = move
			}
			alpha = max(alpha, eval)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return maxEval, bestMove, true
	}

	minEval := Infinity
	for _, move := range moves {
		eval, _, _ := s.minimax(game.ApplyMove(board, move), depth-1, alpha, beta, true)
		if eval < minEval {
			minEval = eval
			bestMove = move
		}
		beta = min(beta, eval)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return minEval, bestMove, true
}
