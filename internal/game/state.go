// Package game holds the game state machine: an immutable board plus
// the color to move, advanced one validated move at a time.
package game

import (
	"errors"

	"chessgame/internal/board"
	"chessgame/internal/core"
	"chessgame/internal/rules"
)

// RuleError is a recoverable move rejection. The game state is
// unchanged and the driver may continue with the next move.
type RuleError struct {
	reason string
}

func (e *RuleError) Error() string {
	return e.reason
}

var (
	ErrNoPieceAtOrigin = &RuleError{"no piece at origin"}
	ErrWrongPlayer     = &RuleError{"wrong player's piece"}
	ErrIllegalMove     = &RuleError{"illegal move"}
	ErrSelfCheck       = &RuleError{"move leaves own king in check"}
)

// IsRuleError distinguishes move rejections from input errors.
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

// State is an immutable game state: board plus the side to move.
// Accepted moves produce a new State; the old value is unaffected.
type State struct {
	Board board.Board
	Turn  core.Color
}

// NewState returns the starting position with White to move.
func NewState() State {
	return State{Board: board.Initial(), Turn: core.ColorWhite}
}

// FEN renders the state in FEN form.
func (s State) FEN() string {
	return s.Board.FEN(s.Turn)
}

// MoveResult describes an accepted move for the caller's reporting:
// what moved, what was captured, and whether the move put the new side
// to move in check.
type MoveResult struct {
	Piece    core.Piece
	From     core.Position
	To       core.Position
	Captured *core.Piece
	Check    bool
}

// Apply validates and applies a move. Validation short-circuits on the
// first failure: a piece must exist at the origin, it must belong to
// the side to move, the move must be geometrically legal, and the
// resulting position must not leave the mover's own king in check. On
// rejection the returned state equals s and the error is a *RuleError.
func Apply(s State, m core.Move) (State, *MoveResult, error) {
	pc := s.Board.At(m.From)
	if pc == nil {
		return s, nil, ErrNoPieceAtOrigin
	}
	if pc.Color != s.Turn {
		return s, nil, ErrWrongPlayer
	}
	if !rules.IsLegalMove(s.Board, m, *pc) {
		return s, nil, ErrIllegalMove
	}

	next := s.Board.WithPieceMoved(m)
	if rules.IsInCheck(next, pc.Color) {
		return s, nil, ErrSelfCheck
	}

	result := &MoveResult{
		Piece:    *pc,
		From:     m.From,
		To:       m.To,
		Captured: s.Board.At(m.To),
		Check:    rules.IsInCheck(next, pc.Color.Opposite()),
	}
	return State{Board: next, Turn: s.Turn.Opposite()}, result, nil
}
