// Package service is the game registry shared by the transports: it
// owns the live games, serializes access to them, and mirrors accepted
// moves to storage when persistence is enabled.
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"chessgame/internal/core"
	"chessgame/internal/game"
	"chessgame/internal/rules"
	"chessgame/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("game not found")
	ErrNoStorage = errors.New("persistence disabled")
)

type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*game.Game),
		store: store,
	}
}

// CreateGame registers a new game, starting from fen when non-empty.
func (s *Service) CreateGame(id, white, black, fen string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}

	var g *game.Game
	if fen == "" {
		g = game.New(white, black)
	} else {
		var err error
		g, err = game.Resume(fen, white, black)
		if err != nil {
			return err
		}
	}
	s.games[id] = g

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			InitialFEN:   g.InitialFEN(),
			WhitePlayer:  white,
			BlackPlayer:  black,
			StartTimeUTC: time.Now().UTC(),
		})
	}
	return nil
}

// DeleteGame removes a game from the registry and, when persistence is
// enabled, from storage.
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	delete(s.games, gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ensure UUID uniqueness (handle potential conflicts)
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeMove validates and applies a move on a game. Rule rejections
// come back as *game.RuleError; accepted moves are mirrored to storage.
func (s *Service) MakeMove(gameID string, m core.Move) (*game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}

	mover := g.Turn()
	result, err := g.Apply(m)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:       gameID,
			MoveNumber:   len(g.Moves()),
			MoveUCI:      m.UCI(),
			FENAfterMove: g.CurrentFEN(),
			PlayerColor:  string(mover),
			MoveTimeUTC:  time.Now().UTC(),
		})
	}
	return result, nil
}

// Snapshot builds the API view of a game. Live games are only read
// under the registry lock, so snapshots never observe a half-applied
// move.
func (s *Service) Snapshot(gameID string) (core.GameResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return core.GameResponse{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}

	resp := core.GameResponse{
		GameID: gameID,
		FEN:    g.CurrentFEN(),
		Turn:   string(g.Turn()),
		Check:  rules.IsInCheck(g.State().Board, g.Turn()),
		Moves:  g.Moves(),
		Players: core.Players{
			White: g.Player(core.ColorWhite),
			Black: g.Player(core.ColorBlack),
		},
	}

	if result := g.LastResult(); result != nil {
		info := &core.MoveInfo{
			Move:   core.Move{From: result.From, To: result.To}.UCI(),
			Player: string(result.Piece.Color),
			Piece:  result.Piece.Type.String(),
			Check:  result.Check,
		}
		if result.Captured != nil {
			info.Captured = result.Captured.String()
		}
		resp.LastMove = info
	}
	return resp, nil
}

// Board renders a game's board in FEN and ASCII forms.
func (s *Service) Board(gameID string) (core.BoardResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return core.BoardResponse{}, fmt.Errorf("%w: %s", ErrNotFound, gameID)
	}
	return core.BoardResponse{
		FEN:   g.CurrentFEN(),
		Board: g.State().Board.Render(),
	}, nil
}

// StorageHealth reports the persistence backend: "disabled" when no
// store is configured, otherwise "ok" or "degraded".
func (s *Service) StorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// GameHistory queries persisted games, optionally filtered by game ID
// or player name.
func (s *Service) GameHistory(gameID, player string) ([]core.GameHistoryEntry, error) {
	if s.store == nil {
		return nil, ErrNoStorage
	}
	records, err := s.store.QueryGames(gameID, player)
	if err != nil {
		return nil, err
	}
	entries := make([]core.GameHistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, core.GameHistoryEntry{
			GameID:     r.GameID,
			InitialFEN: r.InitialFEN,
			White:      r.WhitePlayer,
			Black:      r.BlackPlayer,
			StartedAt:  r.StartTimeUTC,
		})
	}
	return entries, nil
}

// MoveHistory queries a persisted game's moves in play order.
func (s *Service) MoveHistory(gameID string) ([]core.MoveHistoryEntry, error) {
	if s.store == nil {
		return nil, ErrNoStorage
	}
	records, err := s.store.QueryMoves(gameID)
	if err != nil {
		return nil, err
	}
	entries := make([]core.MoveHistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, core.MoveHistoryEntry{
			MoveNumber: r.MoveNumber,
			Move:       r.MoveUCI,
			FEN:        r.FENAfterMove,
			Player:     r.PlayerColor,
			PlayedAt:   r.MoveTimeUTC,
		})
	}
	return entries, nil
}
