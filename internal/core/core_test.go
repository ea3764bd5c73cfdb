package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	assert.True(t, Position{File: 0, Rank: 0}.InBounds())
	assert.True(t, Position{File: 7, Rank: 7}.InBounds())
	assert.False(t, Position{File: -1, Rank: 0}.InBounds())
	assert.False(t, Position{File: 0, Rank: 8}.InBounds())
	assert.False(t, Position{File: 8, Rank: 3}.InBounds())
}

func TestParseUCI(t *testing.T) {
	m, err := ParseUCI("e2e4")
	require.NoError(t, err)
	assert.Equal(t, Move{
		From: Position{File: 4, Rank: 1},
		To:   Position{File: 4, Rank: 3},
	}, m)
	assert.Equal(t, "e2e4", m.UCI())
}

func TestParseUCIErrors(t *testing.T) {
	cases := []struct {
		name, input string
	}{
		{"too short", "e2"},
		{"too long", "e2e4q"},
		{"file out of range", "i1a1"},
		{"rank out of range", "a9a1"},
		{"rank zero", "a0a1"},
		{"uppercase file", "E2e4"},
		{"bad destination", "e2e9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseUCI(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestPieceSymbols(t *testing.T) {
	wk := Piece{Type: King, Color: ColorWhite}
	bq := Piece{Type: Queen, Color: ColorBlack}
	assert.Equal(t, byte('K'), wk.Symbol())
	assert.Equal(t, byte('q'), bq.Symbol())

	p, ok := PieceFromSymbol('n')
	require.True(t, ok)
	assert.Equal(t, Piece{Type: Knight, Color: ColorBlack}, p)

	_, ok = PieceFromSymbol('x')
	assert.False(t, ok)
}
