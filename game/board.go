package game

import (
	"fmt"
	"strings"
)

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

func (c Cell) onBoard() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Cell) add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Piece is never modified after it is placed on a board; moves and promotions place a new Piece.
// Row and Col always match the piece's cell.
type Piece struct {
	ID   string `json:"id"`
	Side Side   `json:"side"`
	Rank Rank   `json:"rank"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (p Piece) Cell() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

// Board is an 8x8 grid of optional pieces. It is a value: assigning a Board copies every cell.
type Board [Size][Size]*Piece

// CreateInitialBoard returns the standard Turkish Dama setup:
// yellow pawns fill rows 1 and 2, blue pawns fill rows 5 and 6.
func CreateInitialBoard() Board {
	var b Board
	for r := 1; r <= 2; r++ {
		for c := 0; c < Size; c++ {
			b[r][c] = NewPiece(Yellow, Pawn, r, c)
		}
	}
	for r := 5; r <= 6; r++ {
		for c := 0; c < Size; c++ {
			b[r][c] = NewPiece(Blue, Pawn, r, c)
		}
	}
	return b
}

// NewPiece creates a piece identified by its side and starting cell.
func NewPiece(side Side, rank Rank, row, col int) *Piece {
	return &Piece{
		ID:   fmt.Sprintf("%s-%d-%d", side, row, col),
		Side: side,
		Rank: rank,
		Row:  row,
		Col:  col,
	}
}

// Place returns a copy of the board with a new piece on the cell, mostly for building test positions.
func (b Board) Place(side Side, rank Rank, row, col int) Board {
	b[row][col] = NewPiece(side, rank, row, col)
	return b
}

// At returns the piece on a cell, or nil if the cell is empty or off the board.
func (b *Board) At(c Cell) *Piece {
	if !c.onBoard() {
		return nil
	}
	return b[c.Row][c.Col]
}

func (b *Board) isEmpty(c Cell) bool {
	return c.onBoard() && b[c.Row][c.Col] == nil
}

// Pieces lists a side's pieces in row-major order.
func (b *Board) Pieces(side Side) []Piece {
	pieces := []Piece{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p := b[r][c]; p != nil && p.Side == side {
				pieces = append(pieces, *p)
			}
		}
	}
	return pieces
}

// Count returns how many pawns and kings a side has on the board.
func (b *Board) Count(side Side) (pawns, kings int) {
	for _, p := range b.Pieces(side) {
		if p.Rank == King {
			kings++
		} else {
			pawns++
		}
	}
	return pawns, kings
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  01234567\n")
	for r := 0; r < Size; r++ {
		fmt.Fprintf(&sb, "%d ", r)
		for c := 0; c < Size; c++ {
			sb.WriteByte(symbol(b[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(p *Piece) byte {
	if p == nil {
		return '.'
	}
	s := byte('b')
	if p.Side == Yellow {
		s = 'y'
	}
	if p.Rank == King {
		s -= 'a' - 'A'
	}
	return s
}
