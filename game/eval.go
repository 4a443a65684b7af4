package game

const (
	KingValue        = 10000
	PawnValue        = 1000
	AdvanceBonus     = 20 // per row advanced
	NearPromotion    = 100
	CenterBonus      = 50
	BackRowBonus     = 30
	PawnBalance      = 500
	KingBalance      = 5000
	MobilityWeight   = 10
	nearPromotionGap = 2
	backRowGap       = Size - 2
)

// EvaluatePosition is the default static evaluation. It scores the board from side's perspective:
// a positional sum over all pieces, heavy material and king differentials, and a light mobility term.
func EvaluatePosition(board Board, side Side) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := board[r][c]
			if p == nil {
				continue
			}
			if p.Side == side {
				score += pieceScore(*p)
			} else {
				score -= pieceScore(*p)
			}
		}
	}

	ownPawns, ownKings := board.Count(side)
	oppPawns, oppKings := board.Count(side.Opponent())
	score += (ownPawns - oppPawns) * PawnBalance
	score += (ownKings - oppKings) * KingBalance

	ownMoves := len(LegalMoves(board, side))
	oppMoves := len(LegalMoves(board, side.Opponent()))
	score += (ownMoves - oppMoves) * MobilityWeight

	return score
}

func pieceScore(p Piece) int {
	// Rows between the piece and its promotion edge
	gap := abs(p.Side.PromotionRow() - p.Row)

	value := 0
	if p.Rank == King {
		value = KingValue
	} else {
		value = PawnValue + (Size-1-gap)*AdvanceBonus
		if gap <= nearPromotionGap {
			value += NearPromotion
		}
	}

	if p.Row >= 2 && p.Row <= 5 && p.Col >= 2 && p.Col <= 5 {
		value += CenterBonus
	}
	if gap == backRowGap {
		value += BackRowBonus
	}
	return value
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
