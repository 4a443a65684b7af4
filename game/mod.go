package game

import "fmt"

// Size is the number of rows and columns on a Dama board.
const Size = 8

type Side int

const (
	Blue Side = iota
	Yellow
)

func (s Side) String() string {
	switch s {
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) Opponent() Side {
	if s == Blue {
		return Yellow
	}
	return Blue
}

// Forward is the row delta of a forward step: blue advances towards row 0, yellow towards row 7.
func (s Side) Forward() int {
	if s == Blue {
		return -1
	}
	return 1
}

// PromotionRow is the far edge on which a pawn of this side becomes a king.
func (s Side) PromotionRow() int {
	if s == Blue {
		return 0
	}
	return Size - 1
}

func (s Side) MarshalText() ([]byte, error) {
	if s != Blue && s != Yellow {
		return nil, fmt.Errorf("invalid side %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

func ParseSide(s string) (Side, error) {
	switch s {
	case "blue":
		return Blue, nil
	case "yellow":
		return Yellow, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

type Rank int

const (
	Pawn Rank = iota
	King
)

func (r Rank) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case King:
		return "king"
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

func (r Rank) MarshalText() ([]byte, error) {
	if r != Pawn && r != King {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pawn":
		*r = Pawn
	case "king":
		*r = King
	default:
		return fmt.Errorf("unknown rank %q", string(text))
	}
	return nil
}

type StateHash uint64

// Evaluate scores a board from the given side's perspective: positive favors that side.
// Implementations must not modify the board.
type Evaluate func(board Board, side Side) int
