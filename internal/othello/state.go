package othello

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidInput = errors.New("invalid input")
)

// Grid maps (row, col) to the color on that square.
type Grid [Size][Size]Color

// State is an Othello board together with the side to move and derived data.
// A State is a value: DoMove returns a new State and leaves the receiver untouched.
type State struct {
	grid     Grid
	discs    DiscCount
	turn     Color
	moves    []Cell
	flips    int
	terminal bool
	winner   Color
}

// NewStateStart creates a state with the starting position and Black to move.
func NewStateStart() State {
	var grid Grid
	grid[3][4] = Black
	grid[4][3] = Black
	grid[3][3] = White
	grid[4][4] = White

	// The start position always has moves for Black.
	state, _ := NewStateFromGrid(grid, Black)
	return state
}

// NewStateFromGrid creates a state from a board snapshot with turn to move.
// When turn has no moves the turn passes, and when neither side can move the state is terminal.
func NewStateFromGrid(grid Grid, turn Color) (State, error) {
	if turn != Black && turn != White {
		return State{}, fmt.Errorf("%w: turn must be black or white, got %d", ErrInvalidInput, turn)
	}

	state := State{
		grid: grid,
		turn: turn,
	}

	for row := range Size {
		for col := range Size {
			color := grid[row][col]
			if _, err := ParseColor(int(color)); err != nil {
				return State{}, fmt.Errorf("square %s: %w", Cell{row, col}.Field(), err)
			}
			state.discs.add(color, 1)
		}
	}

	state.settle(turn)

	// Nobody moved to reach a snapshot, so a finished snapshot keeps the supplied turn.
	if state.terminal {
		state.turn = turn
	}

	return state, nil
}

// Grid returns a copy of the board.
func (s State) Grid() Grid {
	return s.grid
}

// Square returns the color at a cell.
func (s State) Square(cell Cell) Color {
	return s.grid[cell.Row][cell.Col]
}

// Turn returns the side to move.
func (s State) Turn() Color {
	return s.turn
}

// Discs returns the disc count per color.
func (s State) Discs() DiscCount {
	return s.discs
}

// Flips returns the number of discs flipped by the move that produced this state.
func (s State) Flips() int {
	return s.flips
}

// IsTerminal returns whether neither side can move.
func (s State) IsTerminal() bool {
	return s.terminal
}

// Winner returns the winning color, or Empty for a draw. Only meaningful for terminal states.
func (s State) Winner() Color {
	return s.winner
}

// Moves returns the legal moves for the side to move in row-major order.
func (s State) Moves() []Cell {
	moves := make([]Cell, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// MoveCount returns the number of legal moves.
func (s State) MoveCount() int {
	return len(s.moves)
}

// HasMoves checks if the side to move has any legal move.
func (s State) HasMoves() bool {
	return len(s.moves) != 0
}

// Equal checks if two states have the same board and side to move.
func (s State) Equal(other State) bool {
	return s.grid == other.grid && s.turn == other.turn
}

// IsValidMove checks if the side to move may play on cell.
func (s State) IsValidMove(cell Cell) bool {
	return isLegal(&s.grid, s.turn, cell)
}

// LegalMoves returns all legal moves for turn on grid in row-major order.
func LegalMoves(grid Grid, turn Color) []Cell {
	return legalMoves(&grid, turn)
}

func legalMoves(grid *Grid, turn Color) []Cell {
	var moves []Cell
	for row := range Size {
		for col := range Size {
			cell := Cell{Row: row, Col: col}
			if isLegal(grid, turn, cell) {
				moves = append(moves, cell)
			}
		}
	}
	return moves
}

func isLegal(grid *Grid, turn Color, cell Cell) bool {
	if !cell.InBounds() || grid[cell.Row][cell.Col] != Empty {
		return false
	}

	for _, dir := range directions {
		if boundedRun(grid, turn, cell, dir) > 0 {
			return true
		}
	}
	return false
}

// boundedRun returns the length of the opponent run starting next to cell in direction dir,
// if that run is closed by a disc of turn. It returns 0 otherwise.
func boundedRun(grid *Grid, turn Color, cell, dir Cell) int {
	opponent := turn.Opponent()
	length := 0

	for p := cell.add(dir); p.InBounds(); p = p.add(dir) {
		switch grid[p.Row][p.Col] {
		case opponent:
			length++
		case turn:
			return length
		default:
			return 0
		}
	}

	return 0
}

// DoMove plays cell for the side to move and returns the resulting state.
func (s State) DoMove(cell Cell) (State, error) {
	if s.terminal {
		return State{}, fmt.Errorf("%w: %s on finished game", ErrIllegalMove, cell.Field())
	}

	if !s.IsValidMove(cell) {
		return State{}, fmt.Errorf("%w: %s for %s", ErrIllegalMove, cell.Field(), s.turn)
	}

	mover := s.turn
	opponent := mover.Opponent()

	child := State{
		grid:  s.grid,
		discs: s.discs,
	}

	child.grid[cell.Row][cell.Col] = mover
	child.discs.add(mover, 1)
	child.discs.add(Empty, -1)

	for _, dir := range directions {
		length := boundedRun(&child.grid, mover, cell, dir)

		p := cell
		for range length {
			p = p.add(dir)
			child.grid[p.Row][p.Col] = mover
		}

		child.flips += length
	}

	child.discs.add(mover, child.flips)
	child.discs.add(opponent, -child.flips)

	child.settle(opponent)
	return child, nil
}

// settle gives the turn to next, passes back when next cannot move,
// and marks the state terminal when neither side can move. A terminal state keeps the turn
// of the side that passed back, which is the side that made the last move.
func (s *State) settle(next Color) {
	s.turn = next
	s.moves = legalMoves(&s.grid, next)
	if len(s.moves) != 0 {
		return
	}

	s.turn = next.Opponent()
	s.moves = legalMoves(&s.grid, s.turn)
	if len(s.moves) != 0 {
		return
	}

	s.terminal = true
	s.winner = s.discs.winner()
}

// Children returns the states after each legal move, in move order.
func (s State) Children() []State {
	children := make([]State, 0, len(s.moves))
	for _, move := range s.moves {
		// Moves are legal by construction.
		child, _ := s.DoMove(move)
		children = append(children, child)
	}
	return children
}
