package othello

// DiscCount holds the number of squares per Color.
type DiscCount struct {
	Empty int `json:"empty"`
	Black int `json:"black"`
	White int `json:"white"`
}

// Get returns the count for a color.
func (d DiscCount) Get(color Color) int {
	switch color {
	case Black:
		return d.Black
	case White:
		return d.White
	default:
		return d.Empty
	}
}

func (d *DiscCount) add(color Color, delta int) {
	switch color {
	case Black:
		d.Black += delta
	case White:
		d.White += delta
	default:
		d.Empty += delta
	}
}

// Total returns the sum of all buckets, which is always 64 for a valid board.
func (d DiscCount) Total() int {
	return d.Empty + d.Black + d.White
}

// Difference returns Black discs minus White discs.
func (d DiscCount) Difference() int {
	return d.Black - d.White
}

// winner returns the color with strictly more discs, or Empty on a tie.
func (d DiscCount) winner() Color {
	switch {
	case d.Black > d.White:
		return Black
	case d.White > d.Black:
		return White
	default:
		return Empty
	}
}
