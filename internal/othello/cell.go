package othello

import "fmt"

// Size is the width and height of the board.
const Size = 8

// Cell is a square on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// directions holds the 8 compass directions as {row, col} steps.
var directions = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InBounds checks if the cell is on the board.
func (c Cell) InBounds() bool {
	return 0 <= c.Row && c.Row < Size && 0 <= c.Col && c.Col < Size
}

func (c Cell) add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// String returns the "<row> <col>" form used by the move output.
func (c Cell) String() string {
	return fmt.Sprintf("%d %d", c.Row, c.Col)
}

// Field returns the field notation of the cell, for example "d3" for Cell{2, 3}.
func (c Cell) Field() string {
	if !c.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// FieldToCell converts a field notation (e.g. "a1", "h8") to a Cell.
func FieldToCell(field string) (Cell, error) {
	if len(field) != 2 {
		return Cell{}, fmt.Errorf("%w: invalid field length: %q", ErrInvalidInput, field)
	}

	col := field[0] | 0x20 // lower case
	row := field[1]

	if !('a' <= col && col <= 'h' && '1' <= row && row <= '8') {
		return Cell{}, fmt.Errorf("%w: invalid field: %q", ErrInvalidInput, field)
	}

	return Cell{Row: int(row - '1'), Col: int(col - 'a')}, nil
}
