package othello

import "fmt"

// Color is the content of a square, or the side to move.
type Color int

const (
	Empty Color = 0
	Black Color = 1
	White Color = 2
)

// ParseColor converts a wire value (0, 1 or 2) to a Color.
func ParseColor(value int) (Color, error) {
	switch Color(value) {
	case Empty, Black, White:
		return Color(value), nil
	default:
		return Empty, fmt.Errorf("%w: color %d not in {0,1,2}", ErrInvalidInput, value)
	}
}

// ParsePlayer is like ParseColor, but rejects Empty.
func ParsePlayer(value int) (Color, error) {
	color, err := ParseColor(value)
	if err != nil {
		return Empty, err
	}

	if color == Empty {
		return Empty, fmt.Errorf("%w: player must be 1 or 2", ErrInvalidInput)
	}

	return color, nil
}

// Opponent returns the other side. The opponent of Empty is Empty.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
