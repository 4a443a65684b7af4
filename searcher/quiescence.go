package searcher

import "dama/game"

// quiescence resolves pending capture exchanges past the main search horizon. The static
// evaluation of the current position is the stand-pat bound; only captures are explored from it,
// so the recursion ends once neither side can capture.
func (s *search) quiescence(board game.Board, alpha, beta int, maximizing bool) int {
	s.metrics.AddQuiescenceNode()

	standPat := s.evaluate(board, s.root)

	if maximizing {
		if standPat >= beta {
			s.metrics.AddStandPatCutoff()
			return beta
		}
		alpha = max(alpha, standPat)

		for _, move := range captureMoves(board, s.root) {
			score := s.quiescence(game.ApplyMove(board, move), alpha, beta, false)
			if score >= beta {
				s.metrics.AddCutoff()
				return beta
			}
			alpha = max(alpha, score)
		}
		return alpha
	}

	if standPat <= alpha {
		s.metrics.AddStandPatCutoff()
		return alpha
	}
	beta = min(beta, standPat)

	for _, move := range captureMoves(board, s.root.Opponent()) {
		score := s.quiescence(game.ApplyMove(board, move), alpha, beta, true)
		if score <= alpha {
			s.metrics.AddCutoff()
			return alpha
		}
		beta = min(beta, score)
	}
	return beta
}
