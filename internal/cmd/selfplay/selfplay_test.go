package selfplay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	newSearcher := func(depth int) *search.Searcher {
		searcher, err := search.NewSearcher(search.Options{
			Depth:      depth,
			Horizon:    search.HorizonInterior,
			RootPolicy: search.RootSideToMove,
		})
		require.NoError(t, err)
		return searcher
	}

	game := othello.NewGame()
	var output bytes.Buffer

	final, err := Play(game, newSearcher(1), newSearcher(0), &output)
	require.NoError(t, err)

	require.True(t, final.IsTerminal())
	require.True(t, game.IsOver())
	require.Equal(t, 64, final.Discs().Total())

	// Replaying the recorded moves reaches the same state.
	replay, err := othello.NewGameFromMoves(game.Moves())
	require.NoError(t, err)
	require.True(t, final.Equal(replay.State()))

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, len(game.Moves())+othello.Size+3)
	require.Contains(t, lines[len(lines)-1], "game over")
}

func TestPlay_FinishedGame(t *testing.T) {
	var grid othello.Grid
	grid[0][0] = othello.Black

	start, err := othello.NewStateFromGrid(grid, othello.White)
	require.NoError(t, err)

	var output bytes.Buffer
	final, err := Play(othello.NewGameWithStart(start), nil, nil, &output)
	require.NoError(t, err)
	require.Equal(t, othello.Black, final.Winner())
}
