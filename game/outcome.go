package game

// Outcome is the result of a finished game, or NoOutcome while it is in progress.
type Outcome string

const (
	NoOutcome  Outcome = ""
	BlueWins   Outcome = "blue"
	YellowWins Outcome = "yellow"
	Draw       Outcome = "draw"
)

func WinFor(side Side) Outcome {
	if side == Blue {
		return BlueWins
	}
	return YellowWins
}

// History counts how often each position occurred in a game. It belongs to whoever runs the
// game; rules and search never consult it.
type History struct {
	seen   map[StateHash]int
	hashes []StateHash
}

func NewHistory() *History {
	return &History{seen: make(map[StateHash]int)}
}

// Record adds the position and returns how many times it has now occurred.
func (h *History) Record(p Position) int {
	hash := p.Hash()
	h.seen[hash]++
	h.hashes = append(h.hashes, hash)
	return h.seen[hash]
}

func (h *History) Len() int {
	return len(h.hashes)
}

// Adjudicate decides a position reached by a move. The game is drawn once the position has
// occurred repetitionLimit times; otherwise the side to move loses if it has no legal moves.
func Adjudicate(p Position, occurrences, repetitionLimit int) Outcome {
	if repetitionLimit > 0 && occurrences >= repetitionLimit {
		return Draw
	}
	if winner, over := p.Winner(); over {
		return WinFor(winner)
	}
	return NoOutcome
}
