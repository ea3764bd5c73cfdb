package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"testing"

	"chessgame/internal/core"
	"chessgame/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return NewFiberApp(service.New(nil), true)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := nethttp.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	resp.Body.Close()
	return v
}

func TestHealth(t *testing.T) {
	app := newTestApp()
	req, _ := nethttp.NewRequest(nethttp.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "disabled", body["storage"])
}

func TestHistoryWithoutStorage(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/history", "/api/v1/history/some-id/moves"} {
		req, _ := nethttp.NewRequest(nethttp.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)

		e := decode[core.ErrorResponse](t, resp)
		assert.Equal(t, core.ErrStorageDisabled, e.Code)
	}
}

func TestCreateGame(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/v1/games",
		core.CreateGameRequest{White: "alice", Black: "bob"})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	g := decode[core.GameResponse](t, resp)
	assert.NotEmpty(t, g.GameID)
	assert.Equal(t, "w", g.Turn)
	assert.Equal(t, "alice", g.Players.White)
	assert.False(t, g.Check)
	assert.Empty(t, g.Moves)
}

func TestMakeMoveFlow(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/v1/games", core.CreateGameRequest{})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	g := decode[core.GameResponse](t, resp)

	movesPath := fmt.Sprintf("/api/v1/games/%s/moves", g.GameID)

	resp = doJSON(t, app, nethttp.MethodPost, movesPath, core.MoveRequest{Move: "e2e4"})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	g = decode[core.GameResponse](t, resp)
	assert.Equal(t, "b", g.Turn)
	assert.Equal(t, []string{"e2e4"}, g.Moves)
	require.NotNil(t, g.LastMove)
	assert.Equal(t, "e2e4", g.LastMove.Move)
	assert.Equal(t, "Pawn", g.LastMove.Piece)

	// Illegal move comes back with the rejection reason.
	resp = doJSON(t, app, nethttp.MethodPost, movesPath, core.MoveRequest{Move: "e4e6"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	e := decode[core.ErrorResponse](t, resp)
	assert.Equal(t, core.ErrInvalidMove, e.Code)
	assert.Contains(t, e.Details, "wrong player's piece")

	// Validation rejects a malformed move string before parsing.
	resp = doJSON(t, app, nethttp.MethodPost, movesPath, core.MoveRequest{Move: "e2"})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	e = decode[core.ErrorResponse](t, resp)
	assert.Equal(t, core.ErrInvalidRequest, e.Code)
}

func TestGetBoard(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/v1/games", core.CreateGameRequest{})
	g := decode[core.GameResponse](t, resp)

	req, _ := nethttp.NewRequest(nethttp.MethodGet, fmt.Sprintf("/api/v1/games/%s/board", g.GameID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	b := decode[core.BoardResponse](t, resp)
	assert.Contains(t, b.Board, "8 |r|n|b|q|k|b|n|r| 8")
	assert.Contains(t, b.FEN, "rnbqkbnr/pppppppp")
}

func TestGameNotFound(t *testing.T) {
	app := newTestApp()

	req, _ := nethttp.NewRequest(nethttp.MethodGet, "/api/v1/games/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, nethttp.MethodPost, "/api/v1/games/nope/moves", core.MoveRequest{Move: "e2e4"})
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestDeleteGame(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, nethttp.MethodPost, "/api/v1/games", core.CreateGameRequest{})
	g := decode[core.GameResponse](t, resp)

	req, _ := nethttp.NewRequest(nethttp.MethodDelete, "/api/v1/games/"+g.GameID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)

	req, _ = nethttp.NewRequest(nethttp.MethodGet, "/api/v1/games/"+g.GameID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}
