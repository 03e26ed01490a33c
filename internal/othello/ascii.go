package othello

import (
	"fmt"
	"strings"
)

// ASCIIArtLines returns the ascii art lines for the state. Legal moves are shown as dots.
func (s State) ASCIIArtLines() []string {
	lines := make([]string, Size+3)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range Size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range Size {
			cell := Cell{Row: row, Col: col}

			switch {
			case s.Square(cell) == White:
				line += "○ "
			case s.Square(cell) == Black:
				line += "● "
			case s.IsValidMove(cell):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"
	lines[Size+2] = fmt.Sprintf("● %d  ○ %d  %s to move", s.discs.Black, s.discs.White, s.turn)

	if s.terminal {
		lines[Size+2] = fmt.Sprintf("● %d  ○ %d  game over, winner: %s", s.discs.Black, s.discs.White, s.winner)
	}

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (s State) Print() {
	for _, line := range s.ASCIIArtLines() {
		fmt.Println(line)
	}
}

// String returns a compact representation: one digit per square in row-major order,
// followed by "-b" or "-w" for the side to move.
func (s State) String() string {
	var builder strings.Builder
	builder.Grow(Size*Size + 2)

	for row := range Size {
		for col := range Size {
			builder.WriteByte(byte('0' + s.grid[row][col]))
		}
	}

	if s.turn == White {
		builder.WriteString("-w")
	} else {
		builder.WriteString("-b")
	}

	return builder.String()
}

// NewStateFromString parses the output of State.String.
func NewStateFromString(str string) (State, error) {
	if len(str) != Size*Size+2 {
		return State{}, fmt.Errorf("%w: state string must be %d characters long, got %d",
			ErrInvalidInput, Size*Size+2, len(str))
	}

	var grid Grid
	for i := range Size * Size {
		color, err := ParseColor(int(str[i]) - '0')
		if err != nil {
			return State{}, err
		}
		grid[i/Size][i%Size] = color
	}

	var turn Color
	switch str[Size*Size:] {
	case "-b":
		turn = Black
	case "-w":
		turn = White
	default:
		return State{}, fmt.Errorf("%w: invalid turn: %s", ErrInvalidInput, str[Size*Size:])
	}

	return NewStateFromGrid(grid, turn)
}
