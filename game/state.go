package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Position is a board together with the side to move. Like Board it is a value: Play returns a
// new Position and leaves the receiver untouched.
type Position struct {
	Board  Board `json:"board"`
	ToMove Side  `json:"toMove"`
}

func NewPosition() Position {
	return Position{Board: CreateInitialBoard(), ToMove: Blue}
}

func (p Position) Player() Side {
	return p.ToMove
}

func (p Position) LegalMoves() []Move {
	return LegalMoves(p.Board, p.ToMove)
}

// Play applies the move and passes the turn to the opponent.
func (p Position) Play(move Move) Position {
	return Position{
		Board:  ApplyMove(p.Board, move),
		ToMove: p.ToMove.Opponent(),
	}
}

// Winner reports the side that has won because the side to move has no legal moves.
func (p Position) Winner() (Side, bool) {
	if len(p.LegalMoves()) > 0 {
		return 0, false
	}
	return p.ToMove.Opponent(), true
}

// Hash identifies the arrangement of pieces and the side to move. Piece IDs are ignored so that
// the same arrangement reached by different pieces hashes equally.
func (p Position) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(p.ToMove))

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := int8(-1)
			if piece := p.Board[r][c]; piece != nil {
				cell = int8(piece.Side)<<1 | int8(piece.Rank)
			}
			binary.Write(hasher, binary.LittleEndian, cell)
		}
	}

	return StateHash(hasher.Sum64())
}
