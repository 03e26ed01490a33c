package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/models"
	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func afterD3Board(t *testing.T) [][]int {
	t.Helper()

	state, err := othello.NewStateStart().DoMove(othello.Cell{Row: 2, Col: 3})
	require.NoError(t, err)
	return tests.Board(state.Grid())
}

func postBestMove(t *testing.T, app *fiber.App, body []byte, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/api/moves/best", bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name           string
		payload        any
		token          string
		wantStatusCode int
		wantMove       *othello.Cell
	}{
		{
			name:           "no auth",
			payload:        models.MoveRequest{Player: 2, Board: afterD3Board(t)},
			token:          "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "wrong token",
			payload:        models.MoveRequest{Player: 2, Board: afterD3Board(t)},
			token:          "wrong",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			payload:        "not a request",
			token:          tests.TestToken,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid payload",
			payload:        models.MoveRequest{Player: 3, Board: afterD3Board(t)},
			token:          tests.TestToken,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed move",
			payload:        map[string]any{"player": 2, "board": afterD3Board(t), "moves": [][]int{{2}, {2, 3, 9}}},
			token:          tests.TestToken,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "depth too high",
			payload:        map[string]any{"player": 2, "board": afterD3Board(t), "depth": models.MaxRequestDepth + 1},
			token:          tests.TestToken,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "illegal move",
			payload:        models.MoveRequest{Player: 2, Board: afterD3Board(t), Moves: [][]int{{0, 0}}},
			token:          tests.TestToken,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "candidates",
			payload:        models.MoveRequest{Player: 2, Board: afterD3Board(t), Moves: [][]int{{2, 4}, {2, 2}}},
			token:          tests.TestToken,
			wantStatusCode: http.StatusOK,
			wantMove:       &othello.Cell{Row: 2, Col: 2},
		},
		{
			name:           "all legal moves",
			payload:        models.MoveRequest{Player: 2, Board: afterD3Board(t)},
			token:          tests.TestToken,
			wantStatusCode: http.StatusOK,
			wantMove:       &othello.Cell{Row: 4, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newApp(t)

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			resp := postBestMove(t, app, body, tt.token)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			if tt.wantStatusCode == http.StatusOK {
				var response models.MoveResponse
				err = json.NewDecoder(resp.Body).Decode(&response)
				require.NoError(t, err)

				assert.Equal(t, tt.wantMove, response.Move)
				assert.Equal(t, 1, response.Depth)
				assert.False(t, response.Cached)
			}
		})
	}
}

func TestBestMove_Cached(t *testing.T) {
	app, mr := newApp(t)

	body, err := json.Marshal(models.MoveRequest{Player: 1, Board: tests.Board(othello.NewStateStart().Grid())})
	require.NoError(t, err)

	var responses [2]models.MoveResponse
	for i := range responses {
		resp := postBestMove(t, app, body, tests.TestToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&responses[i]))
		resp.Body.Close()
	}

	require.False(t, responses[0].Cached)
	require.True(t, responses[1].Cached)
	require.Equal(t, responses[0].ID, responses[1].ID)
	require.Equal(t, responses[0].Move, responses[1].Move)
	require.Len(t, mr.Keys(), 1)
}

func TestBestMove_NoMoves(t *testing.T) {
	app, _ := newApp(t)

	var grid othello.Grid
	for row := range othello.Size {
		for col := range othello.Size {
			grid[row][col] = othello.White
		}
	}

	body, err := json.Marshal(models.MoveRequest{Player: 1, Board: tests.Board(grid)})
	require.NoError(t, err)

	resp := postBestMove(t, app, body, tests.TestToken)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	require.Contains(t, response, "move")
	require.Nil(t, response["move"])
}

func TestBestMove_ServicesStayOpen(t *testing.T) {
	svc, mr := tests.NewTestServices(t, nil)
	app := tests.NewTestAppWithServices(svc, mr.Addr())

	body, err := json.Marshal(models.MoveRequest{Player: 2, Board: afterD3Board(t)})
	require.NoError(t, err)

	for range 2 {
		resp := postBestMove(t, app, body, tests.TestToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	require.NoError(t, svc.Redis.Ping(context.Background()).Err())
	require.Len(t, mr.Keys(), 1)
}
