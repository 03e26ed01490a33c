package othello

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Input is what the game environment hands to the bot: the side to move, the board,
// and the list of moves the environment considers legal.
type Input struct {
	Player Color
	Grid   Grid
	Moves  []Cell
}

// State builds the state to search from, with Player to move.
// Moves listed for a Player that has to pass are rejected.
func (in Input) State() (State, error) {
	state, err := NewStateFromGrid(in.Grid, in.Player)
	if err != nil {
		return State{}, err
	}

	if state.Turn() != in.Player && len(in.Moves) != 0 {
		return State{}, fmt.Errorf("%w: %s has no legal moves", ErrIllegalMove, in.Player)
	}

	return state, nil
}

// Candidates returns the moves to choose from in state, as built by State.
// Listed moves are returned as is. Otherwise these are the legal moves of Player, none if Player has to pass.
func (in Input) Candidates(state State) []Cell {
	if in.Moves != nil {
		return in.Moves
	}

	if state.Turn() != in.Player {
		return []Cell{}
	}

	return state.Moves()
}

// ParseInput reads a whitespace separated input: the player, 64 squares in row-major order,
// the number of legal moves and one "row col" pair per move.
func ParseInput(r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: unexpected end of input reading %s", ErrInvalidInput, what)
		}

		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidInput, what, err)
		}
		return value, nil
	}

	var input Input

	value, err := next("player")
	if err != nil {
		return nil, err
	}

	if input.Player, err = ParsePlayer(value); err != nil {
		return nil, err
	}

	for row := range Size {
		for col := range Size {
			if value, err = next("square"); err != nil {
				return nil, err
			}

			if input.Grid[row][col], err = ParseColor(value); err != nil {
				return nil, fmt.Errorf("square %d %d: %w", row, col, err)
			}
		}
	}

	count, err := next("move count")
	if err != nil {
		return nil, err
	}

	if count < 0 || count > Size*Size {
		return nil, fmt.Errorf("%w: move count %d out of range", ErrInvalidInput, count)
	}

	input.Moves = make([]Cell, 0, count)
	for range count {
		var cell Cell

		if cell.Row, err = next("move row"); err != nil {
			return nil, err
		}

		if cell.Col, err = next("move col"); err != nil {
			return nil, err
		}

		if !cell.InBounds() {
			return nil, fmt.Errorf("%w: move %s out of range", ErrInvalidInput, cell)
		}

		input.Moves = append(input.Moves, cell)
	}

	return &input, nil
}

// WriteMove writes the chosen move as a single "<row> <col>" line.
func WriteMove(w io.Writer, move Cell) error {
	if !move.InBounds() {
		return errors.New("cannot write move outside the board")
	}

	if _, err := fmt.Fprintln(w, move.String()); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}

	return nil
}
