package core

import "fmt"

// Color identifies a side, using FEN letters.
type Color byte

const (
	ColorWhite Color = 'w'
	ColorBlack Color = 'b'
)

func (c Color) Opposite() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

func (c Color) String() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (t PieceType) String() string {
	switch t {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	default:
		return "Pawn"
	}
}

// Piece is an immutable piece value.
type Piece struct {
	Type  PieceType
	Color Color
}

var symbols = [...]byte{
	King:   'K',
	Queen:  'Q',
	Rook:   'R',
	Bishop: 'B',
	Knight: 'N',
	Pawn:   'P',
}

// Symbol returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Symbol() byte {
	s := symbols[p.Type]
	if p.Color == ColorBlack {
		s += 'a' - 'A'
	}
	return s
}

// PieceFromSymbol maps a FEN letter back to a piece.
func PieceFromSymbol(s byte) (Piece, bool) {
	color := ColorWhite
	if s >= 'a' && s <= 'z' {
		color = ColorBlack
		s -= 'a' - 'A'
	}
	for t, sym := range symbols {
		if sym == s {
			return Piece{Type: PieceType(t), Color: color}, true
		}
	}
	return Piece{}, false
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

// Position addresses a board square. File 0 is the a-file, rank 0 is
// White's back rank. Callers must keep both in [0,7]; positions are not
// validated at construction.
type Position struct {
	File int
	Rank int
}

func (p Position) InBounds() bool {
	return p.File >= 0 && p.File <= 7 && p.Rank >= 0 && p.Rank <= 7
}

// Notation renders the square in algebraic form, "a1" through "h8".
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+p.File, p.Rank+1)
}

type Move struct {
	From Position
	To   Position
}

// UCI renders the move in long algebraic form, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}

// ParseUCI parses a four-character long-algebraic move.
func ParseUCI(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move %q: expected 4 characters", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}

func parseSquare(s string) (Position, error) {
	p := Position{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !p.InBounds() {
		return Position{}, fmt.Errorf("bad square %q", s)
	}
	return p, nil
}
