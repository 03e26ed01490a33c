package move

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, player othello.Color, grid othello.Grid, moves []othello.Cell) string {
	t.Helper()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", player)

	for row := range othello.Size {
		for col := range othello.Size {
			fmt.Fprintf(&sb, "%d ", grid[row][col])
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%d\n", len(moves))
	for _, move := range moves {
		sb.WriteString(move.String() + "\n")
	}

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	return path
}

func TestRun(t *testing.T) {
	state, err := othello.NewStateStart().DoMove(othello.Cell{Row: 2, Col: 3})
	require.NoError(t, err)

	input := writeInput(t, othello.White, state.Grid(), state.Moves())
	output := filepath.Join(t.TempDir(), "output.txt")

	options := search.Options{Depth: 1, Horizon: search.HorizonInterior, RootPolicy: search.RootSideToMove}
	require.NoError(t, Run(input, output, options))

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "4 2\n", string(written))
}

func TestRun_NoMoves(t *testing.T) {
	var grid othello.Grid
	grid[0][0] = othello.Black
	grid[0][1] = othello.White

	input := writeInput(t, othello.White, grid, nil)
	output := filepath.Join(t.TempDir(), "output.txt")

	require.NoError(t, Run(input, output, search.DefaultOptions()))

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Empty(t, written)
}

func TestRun_Errors(t *testing.T) {
	output := filepath.Join(t.TempDir(), "output.txt")

	err := Run(filepath.Join(t.TempDir(), "missing.txt"), output, search.DefaultOptions())
	require.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(broken, []byte("1 0 0 3"), 0o600))
	err = Run(broken, output, search.DefaultOptions())
	require.ErrorIs(t, err, othello.ErrInvalidInput)

	input := writeInput(t, othello.Black, othello.NewStateStart().Grid(), []othello.Cell{{Row: 0, Col: 0}})
	err = Run(input, output, search.DefaultOptions())
	require.ErrorIs(t, err, othello.ErrIllegalMove)
}

func TestReadState(t *testing.T) {
	input := writeInput(t, othello.Black, othello.NewStateStart().Grid(), nil)

	state, err := ReadState(input)
	require.NoError(t, err)
	require.True(t, othello.NewStateStart().Equal(state))
}
