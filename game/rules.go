package game

type direction struct{ dr, dc int }

var kingDirections = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// pawnDirections are forward, left and right. Pawns never move or capture backwards.
func pawnDirections(side Side) []direction {
	return []direction{{side.Forward(), 0}, {0, -1}, {0, 1}}
}

// LegalMoves returns every move the side may play. If any piece can capture, only the capture
// chains with the maximum number of captures across all pieces are legal. An empty result means
// the side cannot move.
func LegalMoves(board Board, side Side) []Move {
	moves := []Move{}
	maxCaptures := 0

	pieces := board.Pieces(side)

	for _, p := range pieces {
		for _, m := range pieceCaptures(board, p, nil) {
			n := len(m.Captures)
			if n > maxCaptures {
				maxCaptures = n
				moves = moves[:0]
			}
			if n == maxCaptures {
				moves = append(moves, m)
			}
		}
	}
	if maxCaptures > 0 {
		return moves
	}

	for _, p := range pieces {
		moves = append(moves, pieceSteps(&board, p)...)
	}
	return moves
}

func pieceSteps(board *Board, p Piece) []Move {
	moves := []Move{}
	from := p.Cell()

	if p.Rank == Pawn {
		for _, d := range pawnDirections(p.Side) {
			to := from.add(d.dr, d.dc)
			if board.isEmpty(to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
		return moves
	}

	for _, d := range kingDirections {
		for to := from.add(d.dr, d.dc); board.isEmpty(to); to = to.add(d.dr, d.dc) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// pieceCaptures enumerates every complete capture chain of a piece, depth first. The board is a
// value, so each recursion works on its own copy with the jumped piece removed and the moving piece
// relocated. visited holds the cells already captured earlier in the chain.
func pieceCaptures(board Board, p Piece, visited []Cell) []Move {
	captures := []Move{}
	from := p.Cell()

	if p.Rank == Pawn {
		for _, d := range pawnDirections(p.Side) {
			mid := from.add(d.dr, d.dc)
			end := from.add(2*d.dr, 2*d.dc)
			if !board.isEmpty(end) || !isCapturable(&board, p.Side, mid, visited) {
				continue
			}
			if end.Row == p.Side.PromotionRow() {
				// Promotion ends the chain even if more captures are available.
				captures = append(captures, singleJump(from, end, mid))
				continue
			}
			captures = append(captures, continueChain(board, p, mid, end, visited)...)
		}
		return captures
	}

	for _, d := range kingDirections {
		mid := from.add(d.dr, d.dc)
		for board.isEmpty(mid) {
			mid = mid.add(d.dr, d.dc)
		}
		if !isCapturable(&board, p.Side, mid, visited) {
			continue
		}
		for end := mid.add(d.dr, d.dc); board.isEmpty(end); end = end.add(d.dr, d.dc) {
			captures = append(captures, continueChain(board, p, mid, end, visited)...)
		}
	}
	return captures
}

// continueChain plays the jump from p over mid to end on a copy of the board and returns every
// chain that starts with it.
func continueChain(board Board, p Piece, mid, end Cell, visited []Cell) []Move {
	from := p.Cell()
	next := p
	next.Row, next.Col = end.Row, end.Col

	board[from.Row][from.Col] = nil
	board[mid.Row][mid.Col] = nil
	board[end.Row][end.Col] = &next

	nextVisited := make([]Cell, len(visited), len(visited)+1)
	copy(nextVisited, visited)
	nextVisited = append(nextVisited, mid)

	chain := pieceCaptures(board, next, nextVisited)
	if len(chain) == 0 {
		return []Move{singleJump(from, end, mid)}
	}

	moves := make([]Move, 0, len(chain))
	for _, c := range chain {
		moves = append(moves, Move{
			From:     from,
			To:       c.To,
			Path:     prepend(end, c.Path),
			Captures: prepend(mid, c.Captures),
		})
	}
	return moves
}

func singleJump(from, to, captured Cell) Move {
	return Move{
		From:     from,
		To:       to,
		Path:     []Cell{to},
		Captures: []Cell{captured},
	}
}

func isCapturable(board *Board, side Side, c Cell, visited []Cell) bool {
	target := board.At(c)
	if target == nil || target.Side == side {
		return false
	}
	for _, v := range visited {
		if v == c {
			return false
		}
	}
	return true
}

// ApplyMove returns the board after the move. The input board is not modified. Captured pieces
// are removed, and a pawn becomes a king if any of its landings is on its promotion row. If the
// origin cell is empty the board is returned unchanged.
func ApplyMove(board Board, move Move) Board {
	p := board.At(move.From)
	if p == nil {
		return board
	}

	board[move.From.Row][move.From.Col] = nil
	for _, c := range move.Captures {
		board[c.Row][c.Col] = nil
	}

	moved := *p
	moved.Row, moved.Col = move.To.Row, move.To.Col
	if moved.Rank == Pawn && landsOnRow(move, p.Side.PromotionRow()) {
		moved.Rank = King
	}
	board[move.To.Row][move.To.Col] = &moved
	return board
}

func landsOnRow(move Move, row int) bool {
	if move.To.Row == row {
		return true
	}
	for _, c := range move.Path {
		if c.Row == row {
			return true
		}
	}
	return false
}
