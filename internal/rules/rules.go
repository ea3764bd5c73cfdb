// Package rules implements piece movement legality and check
// detection. Legality here is geometric: a legal move satisfies the
// piece's movement pattern and path clearance, ignoring whether it
// exposes the mover's own king.
package rules

import (
	"chessgame/internal/board"
	"chessgame/internal/core"
)

// IsLegalMove reports whether pc may move from m.From to m.To on b.
// A move onto a square held by a same-colored piece is never legal;
// beyond that the rule is piece-specific. Castling, en passant, and
// promotion are outside the rule set.
func IsLegalMove(b board.Board, m core.Move, pc core.Piece) bool {
	if dst := b.At(m.To); dst != nil && dst.Color == pc.Color {
		return false
	}

	df := m.To.File - m.From.File
	dr := m.To.Rank - m.From.Rank

	switch pc.Type {
	case core.King:
		return abs(df) <= 1 && abs(dr) <= 1
	case core.Rook:
		return rookMove(b, m, df, dr)
	case core.Bishop:
		return bishopMove(b, m, df, dr)
	case core.Queen:
		return rookMove(b, m, df, dr) || bishopMove(b, m, df, dr)
	case core.Knight:
		return (abs(df) == 2 && abs(dr) == 1) || (abs(df) == 1 && abs(dr) == 2)
	case core.Pawn:
		return pawnMove(b, m, pc.Color, df, dr)
	}
	return false
}

func rookMove(b board.Board, m core.Move, df, dr int) bool {
	if df != 0 && dr != 0 {
		return false
	}
	return pathClear(b, m)
}

func bishopMove(b board.Board, m core.Move, df, dr int) bool {
	if abs(df) != abs(dr) {
		return false
	}
	return pathClear(b, m)
}

func pawnMove(b board.Board, m core.Move, c core.Color, df, dr int) bool {
	dir, start := 1, 1
	if c == core.ColorBlack {
		dir, start = -1, 6
	}

	switch {
	case df == 0 && dr == dir:
		// Single advance onto an empty square.
		return b.At(m.To) == nil
	case df == 0 && dr == 2*dir && m.From.Rank == start:
		// Double advance from the start rank; both squares must be empty.
		mid := core.Position{File: m.From.File, Rank: m.From.Rank + dir}
		return b.At(mid) == nil && b.At(m.To) == nil
	case abs(df) == 1 && dr == dir:
		// Diagonal capture only.
		dst := b.At(m.To)
		return dst != nil && dst.Color != c
	}
	return false
}

// pathClear walks the squares strictly between origin and destination
// along the move's line; any occupied square blocks a sliding piece.
func pathClear(b board.Board, m core.Move) bool {
	stepF := sign(m.To.File - m.From.File)
	stepR := sign(m.To.Rank - m.From.Rank)

	p := core.Position{File: m.From.File + stepF, Rank: m.From.Rank + stepR}
	for p != m.To {
		if b.At(p) != nil {
			return false
		}
		p.File += stepF
		p.Rank += stepR
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
