package main

import (
	"bytes"
	"strings"
	"testing"

	"chessgame/internal/cli"
	"chessgame/internal/moves"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaysMovesFile(t *testing.T) {
	// 1. e4 e5, then an illegal rook move that gets rejected.
	input := "4 6 4 4\n4 1 4 3\n0 7 3 4\n"
	var out bytes.Buffer

	err := run(moves.New(strings.NewReader(input)), cli.New(&out))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "White Pawn moves e2 to e4")
	assert.Contains(t, text, "Black Pawn moves e7 to e5")
	assert.Contains(t, text, "rejected: illegal move")
	assert.Contains(t, text, "No more moves - game over.")
}

func TestRunStopsOnMalformedRecord(t *testing.T) {
	input := "4 6 4 4\n9 9 9 9\n4 1 4 3\n"
	var out bytes.Buffer

	err := run(moves.New(strings.NewReader(input)), cli.New(&out))
	require.ErrorIs(t, err, moves.ErrFormat)

	text := out.String()
	assert.Contains(t, text, "White Pawn moves e2 to e4")
	// Processing halts before the move after the bad record.
	assert.NotContains(t, text, "e7 to e5")
}
