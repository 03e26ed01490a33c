// Package evaluate scores Othello states. All scores are from Black's point of view:
// higher is better for Black, lower is better for White.
package evaluate

import (
	"github.com/lk16/flippy-bot/internal/othello"
)

const (
	centerBonus  = 2
	ringBonus    = 1
	cornerBonus  = 5
	edgeBonus    = 2
	dangerMalus  = 1
	mobilityGain = 2
	flipWeight   = 5
)

var (
	corners     = [2]int{0, othello.Size - 1}
	dangerLines = [2]int{1, othello.Size - 2}
)

// PositionalBonus scores where Black's discs are. Discs on an edge row and an edge column
// count for both. With penalizeDangerZone, discs next to an edge cost a point per line they are on.
func PositionalBonus(state othello.State, penalizeDangerZone bool) int {
	grid := state.Grid()
	bonus := 0

	isBlack := func(row, col int) bool {
		return grid[row][col] == othello.Black
	}

	// center
	for row := 3; row <= 4; row++ {
		for col := 3; col <= 4; col++ {
			if isBlack(row, col) {
				bonus += centerBonus
			}
		}
	}

	for row := 2; row <= 5; row++ {
		for col := 2; col <= 5; col++ {
			if isBlack(row, col) {
				bonus += ringBonus
			}
		}
	}

	for _, row := range corners {
		for _, col := range corners {
			if isBlack(row, col) {
				bonus += cornerBonus
			}
		}
	}

	// edges
	for _, line := range corners {
		for i := range othello.Size {
			if isBlack(line, i) {
				bonus += edgeBonus
			}
			if isBlack(i, line) {
				bonus += edgeBonus
			}
		}
	}

	if penalizeDangerZone {
		for _, line := range dangerLines {
			for i := range othello.Size {
				if isBlack(i, line) {
					bonus -= dangerMalus
				}
				if isBlack(line, i) {
					bonus -= dangerMalus
				}
			}
		}
	}

	return bonus
}

// Interior scores a state the search did not expand any further while the game goes on.
// It prefers keeping many moves for the side to move and flipping few discs.
func Interior(state othello.State) int {
	tempo := mobilityGain*state.MoveCount() - flipWeight*state.Flips()
	return PositionalBonus(state, true) + signed(state.Turn(), tempo)
}

// Leaf scores a finished game, or any state where material counts directly.
func Leaf(state othello.State) int {
	return PositionalBonus(state, false) + signed(state.Turn(), flipWeight*state.Flips()) + Material(state)
}

// Material returns Black's discs minus White's discs.
func Material(state othello.State) int {
	return state.Discs().Difference()
}

// signed orients a score for the side to move towards Black.
func signed(turn othello.Color, score int) int {
	if turn == othello.White {
		return -score
	}
	return score
}
