package game

import (
	"chessgame/internal/board"
	"chessgame/internal/core"
)

// Snapshot records one position in the game history.
type Snapshot struct {
	FEN          string     // Position at this point
	PreviousMove string     // Move that created it (empty for initial)
	NextTurn     core.Color // Side to move at this position
}

// Game wraps the current State with its history and player names. It
// is not safe for concurrent use; the service layer serializes access.
type Game struct {
	state      State
	snapshots  []Snapshot
	players    map[core.Color]string
	lastResult *MoveResult
}

// New starts a game from the standard position.
func New(white, black string) *Game {
	return fromState(NewState(), white, black)
}

// Resume starts a game from a FEN position.
func Resume(fen, white, black string) (*Game, error) {
	b, turn, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return fromState(State{Board: b, Turn: turn}, white, black), nil
}

func fromState(s State, white, black string) *Game {
	return &Game{
		state: s,
		snapshots: []Snapshot{
			{FEN: s.FEN(), NextTurn: s.Turn},
		},
		players: map[core.Color]string{
			core.ColorWhite: white,
			core.ColorBlack: black,
		},
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Turn() core.Color {
	return g.state.Turn
}

func (g *Game) Player(c core.Color) string {
	return g.players[c]
}

func (g *Game) CurrentFEN() string {
	return g.state.FEN()
}

func (g *Game) InitialFEN() string {
	return g.snapshots[0].FEN
}

// Moves returns the accepted moves in order, in long algebraic form.
func (g *Game) Moves() []string {
	moves := make([]string, 0, len(g.snapshots)-1)
	for _, s := range g.snapshots[1:] {
		moves = append(moves, s.PreviousMove)
	}
	return moves
}

// LastResult returns the result of the most recent accepted move, or
// nil before the first one.
func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// Apply advances the game by one move. On rejection the game is
// unchanged and the error is a *RuleError.
func (g *Game) Apply(m core.Move) (*MoveResult, error) {
	next, result, err := Apply(g.state, m)
	if err != nil {
		return nil, err
	}
	g.state = next
	g.lastResult = result
	g.snapshots = append(g.snapshots, Snapshot{
		FEN:          next.FEN(),
		PreviousMove: m.UCI(),
		NextTurn:     next.Turn,
	})
	return result, nil
}
