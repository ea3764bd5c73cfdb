package board

import (
	"fmt"
	"strings"

	"chessgame/internal/core"
)

const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN renders the board and active color in FEN form. The rule set has
// no castling or en passant, so those fields are always "-" and the
// move counters are fixed.
func (b Board) FEN(turn core.Color) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := b.squares[r][f]
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return fmt.Sprintf("%s %c - - 0 1", sb.String(), turn)
}

// ParseFEN parses the piece-placement and active-color fields of a FEN
// string. Castling, en passant, and the move counters are accepted and
// ignored.
func ParseFEN(fen string) (Board, core.Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return Board{}, 0, fmt.Errorf("invalid FEN: expected at least 2 parts, got %d", len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Board{}, 0, fmt.Errorf("invalid FEN: expected 8 ranks")
	}

	var b Board
	for i, row := range ranks {
		r := 7 - i // FEN lists rank 8 first
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := core.PieceFromSymbol(ch)
			if !ok {
				return Board{}, 0, fmt.Errorf("invalid FEN: bad piece %q", ch)
			}
			if file >= 8 {
				return Board{}, 0, fmt.Errorf("invalid FEN: too many pieces in rank %d", r+1)
			}
			b.squares[r][file] = &pc
			file++
		}
		if file != 8 {
			return Board{}, 0, fmt.Errorf("invalid FEN: rank %d has %d files", r+1, file)
		}
	}

	var turn core.Color
	switch parts[1] {
	case "w":
		turn = core.ColorWhite
	case "b":
		turn = core.ColorBlack
	default:
		return Board{}, 0, fmt.Errorf("invalid FEN: turn must be 'w' or 'b'")
	}

	return b, turn, nil
}
