package board

import (
	"fmt"
	"strings"
)

const (
	fileHeader = "   a b c d e f g h"
	separator  = "  -----------------"
)

// Render produces a fixed-width ASCII grid: a file-letter header, a
// separator, one row per rank from 8 down to 1 framed by the rank digit
// on both sides with cells separated by vertical bars, a closing
// separator, and the file letters again. Empty squares render as a
// space, pieces as their FEN letter.
func (b Board) Render() string {
	var sb strings.Builder
	sb.WriteString(fileHeader + "\n")
	sb.WriteString(separator + "\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d |", r+1))
		for f := 0; f < 8; f++ {
			pc := b.squares[r][f]
			if pc == nil {
				sb.WriteString(" |")
			} else {
				sb.WriteString(fmt.Sprintf("%c|", pc.Symbol()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}

	sb.WriteString(separator + "\n")
	sb.WriteString(fileHeader)
	return sb.String()
}
