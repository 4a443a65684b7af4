package game

import "strings"

// Move is a step or a capture chain. For captures, Path holds every landing cell and Captures
// the cell of the piece removed on reaching the landing with the same index. Both are empty for a
// non-capture move.
type Move struct {
	From     Cell   `json:"from"`
	To       Cell   `json:"to"`
	Path     []Cell `json:"path,omitempty"`
	Captures []Cell `json:"captures,omitempty"`
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

func (m Move) Equal(other Move) bool {
	if m.From != other.From || m.To != other.To {
		return false
	}
	if len(m.Path) != len(other.Path) || len(m.Captures) != len(other.Captures) {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != other.Path[i] {
			return false
		}
	}
	for i := range m.Captures {
		if m.Captures[i] != other.Captures[i] {
			return false
		}
	}
	return true
}

// Jumps splits a capture chain into single-jump moves, in order. A non-capture move is its own
// only jump.
func (m Move) Jumps() []Move {
	if !m.IsCapture() {
		return []Move{m}
	}
	jumps := make([]Move, len(m.Captures))
	from := m.From
	for i := range m.Captures {
		jumps[i] = Move{
			From:     from,
			To:       m.Path[i],
			Path:     []Cell{m.Path[i]},
			Captures: []Cell{m.Captures[i]},
		}
		from = m.Path[i]
	}
	return jumps
}

// String renders "5,3-4,3" for a step and "4,3x2,3x2,5" for a capture chain.
func (m Move) String() string {
	if !m.IsCapture() {
		return m.From.String() + "-" + m.To.String()
	}
	parts := []string{m.From.String()}
	for _, c := range m.Path {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "x")
}

func prepend(c Cell, cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells)+1)
	out = append(out, c)
	return append(out, cells...)
}
