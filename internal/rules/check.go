package rules

import (
	"chessgame/internal/board"
	"chessgame/internal/core"
)

// IsInCheck reports whether some opposing piece has a legal move onto
// the king square of the given color. Callers must supply a board with
// exactly one king per color; with no king present there is nothing to
// attack and the result is false.
func IsInCheck(b board.Board, c core.Color) bool {
	kingPos, ok := b.FindKing(c)
	if !ok {
		return false
	}

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			from := core.Position{File: f, Rank: r}
			pc := b.At(from)
			if pc == nil || pc.Color == c {
				continue
			}
			if IsLegalMove(b, core.Move{From: from, To: kingPos}, *pc) {
				return true
			}
		}
	}
	return false
}
