package othello

import (
	"fmt"
)

// Game is a chain of states connected by moves, starting at a start state.
// Passes are not stored: DoMove already hands the turn back when the opponent cannot move.
type Game struct {
	// start is the state before any move is played. This allows for custom start positions.
	start State

	// moves is the list of moves played so far.
	moves []Cell

	// states caches the state after each move, states[0] is the start state.
	states []State
}

// NewGameWithStart creates a new game with a custom start state.
func NewGameWithStart(start State) *Game {
	return &Game{
		start:  start,
		moves:  make([]Cell, 0),
		states: []State{start},
	}
}

// NewGame creates a new game from the starting position.
func NewGame() *Game {
	return NewGameWithStart(NewStateStart())
}

// NewGameFromMoves creates a new game from a list of moves.
func NewGameFromMoves(moves []Cell) (*Game, error) {
	game := NewGame()

	for _, move := range moves {
		if err := game.PushMove(move); err != nil {
			return nil, fmt.Errorf("failed to push move: %w", err)
		}
	}

	return game, nil
}

// State returns the current state.
func (g *Game) State() State {
	return g.states[len(g.states)-1]
}

// Start returns the start state.
func (g *Game) Start() State {
	return g.start
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []Cell {
	moves := make([]Cell, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// PushMove plays a move on the current state.
func (g *Game) PushMove(move Cell) error {
	next, err := g.State().DoMove(move)
	if err != nil {
		return err
	}

	g.moves = append(g.moves, move)
	g.states = append(g.states, next)
	return nil
}

// PopMove undoes the last move. It does nothing on a game without moves.
func (g *Game) PopMove() {
	if len(g.moves) == 0 {
		return
	}

	g.moves = g.moves[:len(g.moves)-1]
	g.states = g.states[:len(g.states)-1]
}

// IsOver returns whether the current state is terminal.
func (g *Game) IsOver() bool {
	return g.State().IsTerminal()
}
