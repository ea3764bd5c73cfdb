package game

import (
	"testing"

	"chessgame/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameHistory(t *testing.T) {
	g := New("alice", "bob")
	assert.Equal(t, "alice", g.Player(core.ColorWhite))
	assert.Equal(t, "bob", g.Player(core.ColorBlack))
	assert.Empty(t, g.Moves())
	assert.Nil(t, g.LastResult())
	assert.Equal(t, g.InitialFEN(), g.CurrentFEN())

	e2e4, err := core.ParseUCI("e2e4")
	require.NoError(t, err)
	result, err := g.Apply(e2e4)
	require.NoError(t, err)
	assert.Equal(t, result, g.LastResult())
	assert.Equal(t, core.ColorBlack, g.Turn())

	e7e5, err := core.ParseUCI("e7e5")
	require.NoError(t, err)
	_, err = g.Apply(e7e5)
	require.NoError(t, err)

	assert.Equal(t, []string{"e2e4", "e7e5"}, g.Moves())
	assert.NotEqual(t, g.InitialFEN(), g.CurrentFEN())
}

func TestGameRejectionLeavesHistoryUntouched(t *testing.T) {
	g := New("alice", "bob")
	fen := g.CurrentFEN()

	// Black piece on White's turn.
	m, err := core.ParseUCI("e7e5")
	require.NoError(t, err)
	_, err = g.Apply(m)
	require.ErrorIs(t, err, ErrWrongPlayer)

	assert.Empty(t, g.Moves())
	assert.Equal(t, fen, g.CurrentFEN())
	assert.Equal(t, core.ColorWhite, g.Turn())
}

func TestResume(t *testing.T) {
	g, err := Resume("4k3/8/8/8/8/8/8/4K2R w - - 0 1", "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, core.ColorWhite, g.Turn())

	// The h1 rook can check the black king from h8.
	m, err := core.ParseUCI("h1h8")
	require.NoError(t, err)
	result, err := g.Apply(m)
	require.NoError(t, err)
	assert.True(t, result.Check)

	_, err = Resume("not a fen", "alice", "bob")
	assert.Error(t, err)
}
