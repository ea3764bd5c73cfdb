package core

import "time"

// Request types

type CreateGameRequest struct {
	White string `json:"white,omitempty" validate:"omitempty,max=64"`
	Black string `json:"black,omitempty" validate:"omitempty,max=64"`
	FEN   string `json:"fen,omitempty" validate:"omitempty,max=100"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,len=4"` // long algebraic, e.g. "e2e4"
}

// Response types

type GameResponse struct {
	GameID   string    `json:"gameId"`
	FEN      string    `json:"fen"`
	Turn     string    `json:"turn"` // "w" or "b"
	Check    bool      `json:"check"`
	Moves    []string  `json:"moves"`
	Players  Players   `json:"players"`
	LastMove *MoveInfo `json:"lastMove,omitempty"`
}

type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type MoveInfo struct {
	Move     string `json:"move"`
	Player   string `json:"player"` // "w" or "b"
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
	Check    bool   `json:"check"`
}

type BoardResponse struct {
	FEN   string `json:"fen"`
	Board string `json:"board"` // ASCII representation
}

type GameHistoryEntry struct {
	GameID     string    `json:"gameId"`
	InitialFEN string    `json:"initialFen"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	StartedAt  time.Time `json:"startedAt"`
}

type MoveHistoryEntry struct {
	MoveNumber int       `json:"moveNumber"`
	Move       string    `json:"move"`
	FEN        string    `json:"fen"`
	Player     string    `json:"player"` // "w" or "b"
	PlayedAt   time.Time `json:"playedAt"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	ErrGameNotFound      = "GAME_NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrStorageDisabled   = "STORAGE_DISABLED"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrInternalError     = "INTERNAL_ERROR"
)
