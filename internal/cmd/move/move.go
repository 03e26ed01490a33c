package move

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
)

// Run reads the input file, searches the best move and writes it to the output file.
// The output file is left empty when there is no move to choose.
func Run(inputPath, outputPath string, options search.Options) error {
	input, err := readInput(inputPath)
	if err != nil {
		return err
	}

	root, err := input.State()
	if err != nil {
		return err
	}

	searcher, err := search.NewSearcher(options)
	if err != nil {
		return err
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer output.Close()

	result, err := searcher.BestMove(root, input.Candidates(root))
	if errors.Is(err, search.ErrNoMoves) {
		slog.Info("No moves to choose from", "player", input.Player)
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("Found best move",
		"move", result.Move.Field(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
	)

	if err = othello.WriteMove(output, result.Move); err != nil {
		return err
	}

	return output.Close()
}

func readInput(path string) (*othello.Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	input, err := othello.ParseInput(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return input, nil
}

// ReadState reads an input file and returns the state it describes.
func ReadState(path string) (othello.State, error) {
	input, err := readInput(path)
	if err != nil {
		return othello.State{}, err
	}

	return input.State()
}
