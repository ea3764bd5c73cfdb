package http

import (
	"errors"

	"chessgame/internal/core"
	"chessgame/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Health reports service liveness and the persistence backend state
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"storage": h.svc.StorageHealth(),
	})
}

// CreateGame creates a new game, optionally from a FEN position
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.CreateGameRequest)
	if !ok {
		req = &core.CreateGameRequest{}
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid request body",
				Code:    core.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
	}

	white, black := req.White, req.Black
	if white == "" {
		white = "White"
	}
	if black == "" {
		black = "Black"
	}

	gameID := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(gameID, white, black, req.FEN); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "failed to create game",
			Code:    core.ErrInvalidRequest,
			Details: err.Error(),
		})
	}

	resp, _ := h.svc.Snapshot(gameID)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	resp, err := h.svc.Snapshot(c.Params("gameId"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(resp)
}

// MakeMove submits a move in long algebraic form
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	req, ok := c.Locals("validatedBody").(*core.MoveRequest)
	if !ok {
		req = &core.MoveRequest{}
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid request body",
				Code:    core.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
	}

	m, err := core.ParseUCI(req.Move)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid move",
			Code:    core.ErrInvalidMove,
			Details: err.Error(),
		})
	}

	if _, err := h.svc.MakeMove(gameID, m); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c)
		}
		return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
			Error:   "invalid move",
			Code:    core.ErrInvalidMove,
			Details: err.Error(),
		})
	}

	resp, err := h.svc.Snapshot(gameID)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(resp)
}

// GetBoard returns the board in FEN and ASCII forms
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	resp, err := h.svc.Board(c.Params("gameId"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(resp)
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	if err := h.svc.DeleteGame(c.Params("gameId")); err != nil {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GameHistory lists persisted games, filtered by the optional "game"
// and "player" query parameters
func (h *HTTPHandler) GameHistory(c *fiber.Ctx) error {
	entries, err := h.svc.GameHistory(c.Query("game"), c.Query("player"))
	if err != nil {
		return historyError(c, err)
	}
	return c.JSON(entries)
}

// MoveHistory lists a persisted game's moves in play order
func (h *HTTPHandler) MoveHistory(c *fiber.Ctx) error {
	entries, err := h.svc.MoveHistory(c.Params("gameId"))
	if err != nil {
		return historyError(c, err)
	}
	return c.JSON(entries)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
		Error: "game not found",
		Code:  core.ErrGameNotFound,
	})
}

func historyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNoStorage) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(core.ErrorResponse{
			Error:   "persistence disabled",
			Code:    core.ErrStorageDisabled,
			Details: "start the server with -storage-path to record history",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
		Error:   "history query failed",
		Code:    core.ErrInternalError,
		Details: err.Error(),
	})
}
