package board

import (
	"strings"
	"testing"

	"chessgame/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPosition(t *testing.T) {
	b := Initial()

	wk := b.At(core.Position{File: 4, Rank: 0})
	require.NotNil(t, wk)
	assert.Equal(t, core.King, wk.Type)
	assert.Equal(t, core.ColorWhite, wk.Color)

	bk := b.At(core.Position{File: 4, Rank: 7})
	require.NotNil(t, bk)
	assert.Equal(t, core.King, bk.Type)
	assert.Equal(t, core.ColorBlack, bk.Color)

	for f := 0; f < 8; f++ {
		wp := b.At(core.Position{File: f, Rank: 1})
		require.NotNil(t, wp)
		assert.Equal(t, core.Pawn, wp.Type)
		assert.Equal(t, core.ColorWhite, wp.Color)

		bp := b.At(core.Position{File: f, Rank: 6})
		require.NotNil(t, bp)
		assert.Equal(t, core.Pawn, bp.Type)
		assert.Equal(t, core.ColorBlack, bp.Color)
	}

	for r := 2; r <= 5; r++ {
		for f := 0; f < 8; f++ {
			assert.Nil(t, b.At(core.Position{File: f, Rank: r}))
		}
	}
}

func TestWithPieceMoved(t *testing.T) {
	b := Initial()
	from := core.Position{File: 4, Rank: 1}
	to := core.Position{File: 4, Rank: 3}
	pawn := b.At(from)
	require.NotNil(t, pawn)

	moved := b.WithPieceMoved(core.Move{From: from, To: to})

	assert.Nil(t, moved.At(from))
	assert.Equal(t, pawn, moved.At(to))

	// Original board untouched
	assert.NotNil(t, b.At(from))
	assert.Nil(t, b.At(to))
}

func TestWithPieceMovedOverwritesDestination(t *testing.T) {
	var b Board
	from := core.Position{File: 0, Rank: 0}
	to := core.Position{File: 0, Rank: 5}
	b = b.Place(from, core.Piece{Type: core.Rook, Color: core.ColorWhite})
	b = b.Place(to, core.Piece{Type: core.Pawn, Color: core.ColorBlack})

	moved := b.WithPieceMoved(core.Move{From: from, To: to})

	got := moved.At(to)
	require.NotNil(t, got)
	assert.Equal(t, core.Rook, got.Type)
	assert.Nil(t, moved.At(from))
}

func TestFindKing(t *testing.T) {
	b := Initial()

	pos, ok := b.FindKing(core.ColorWhite)
	require.True(t, ok)
	assert.Equal(t, core.Position{File: 4, Rank: 0}, pos)

	pos, ok = b.FindKing(core.ColorBlack)
	require.True(t, ok)
	assert.Equal(t, core.Position{File: 4, Rank: 7}, pos)

	var empty Board
	_, ok = empty.FindKing(core.ColorWhite)
	assert.False(t, ok)
}

func TestNotation(t *testing.T) {
	assert.Equal(t, "a1", core.Position{File: 0, Rank: 0}.Notation())
	assert.Equal(t, "h8", core.Position{File: 7, Rank: 7}.Notation())
	assert.Equal(t, "e2", core.Position{File: 4, Rank: 1}.Notation())
}

func TestRender(t *testing.T) {
	out := Initial().Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	assert.Equal(t, "   a b c d e f g h", lines[0])
	assert.Equal(t, "  -----------------", lines[1])
	// Rank 8 first, rank 1 last
	assert.Equal(t, "8 |r|n|b|q|k|b|n|r| 8", lines[2])
	assert.Equal(t, "7 |p|p|p|p|p|p|p|p| 7", lines[3])
	assert.Equal(t, "6 | | | | | | | | | 6", lines[4])
	assert.Equal(t, "2 |P|P|P|P|P|P|P|P| 2", lines[8])
	assert.Equal(t, "1 |R|N|B|Q|K|B|N|R| 1", lines[9])
	assert.Equal(t, "  -----------------", lines[10])
	assert.Equal(t, "   a b c d e f g h", lines[11])
}

func TestFENRoundTrip(t *testing.T) {
	b := Initial()
	fen := b.FEN(core.ColorWhite)
	assert.Equal(t, StartingFEN, fen)

	parsed, turn, err := ParseFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, core.ColorWhite, turn)
	assert.Equal(t, fen, parsed.FEN(turn))
}

func TestParseFENErrors(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"missing turn", "8/8/8/8/8/8/8/8"},
		{"bad turn", "8/8/8/8/8/8/8/8 x"},
		{"short rank", "7/8/8/8/8/8/8/8 w"},
		{"bad piece", "x7/8/8/8/8/8/8/8 w"},
		{"seven ranks", "8/8/8/8/8/8/8 w"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseFEN(tc.fen)
			assert.Error(t, err)
		})
	}
}
