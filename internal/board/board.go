package board

import (
	"chessgame/internal/core"
)

// Board is an 8x8 grid of optional pieces, indexed [rank][file] with
// rank 0 as White's back rank. Board is a value type: mutating
// operations return a new Board and never touch the receiver. Pieces
// are immutable, so sharing pointers across copies is safe.
type Board struct {
	squares [8][8]*core.Piece
}

// Initial returns the standard chess starting position.
func Initial() Board {
	var b Board
	back := [8]core.PieceType{
		core.Rook, core.Knight, core.Bishop, core.Queen,
		core.King, core.Bishop, core.Knight, core.Rook,
	}
	for f := 0; f < 8; f++ {
		b.squares[0][f] = &core.Piece{Type: back[f], Color: core.ColorWhite}
		b.squares[1][f] = &core.Piece{Type: core.Pawn, Color: core.ColorWhite}
		b.squares[6][f] = &core.Piece{Type: core.Pawn, Color: core.ColorBlack}
		b.squares[7][f] = &core.Piece{Type: back[f], Color: core.ColorBlack}
	}
	return b
}

// At returns the piece on the square, or nil for an empty square.
// The position must be in bounds.
func (b Board) At(p core.Position) *core.Piece {
	return b.squares[p.Rank][p.File]
}

// Place returns a copy of the board with the piece set on the square.
func (b Board) Place(p core.Position, pc core.Piece) Board {
	b.squares[p.Rank][p.File] = &pc
	return b
}

// WithPieceMoved returns a copy of the board with the piece on m.From
// relocated to m.To and the origin cleared. It performs no legality
// checking; whatever occupies the destination is overwritten.
func (b Board) WithPieceMoved(m core.Move) Board {
	b.squares[m.To.Rank][m.To.File] = b.squares[m.From.Rank][m.From.File]
	b.squares[m.From.Rank][m.From.File] = nil
	return b
}

// FindKing locates the king of the given color. Boards used for play
// must hold exactly one king per color; FindKing reports the first one
// it encounters.
func (b Board) FindKing(c core.Color) (core.Position, bool) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := b.squares[r][f]
			if pc != nil && pc.Type == core.King && pc.Color == c {
				return core.Position{File: f, Rank: r}, true
			}
		}
	}
	return core.Position{}, false
}
