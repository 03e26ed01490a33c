package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
)

// MaxRequestDepth is the deepest search a request may ask for.
// Searches cannot be cancelled, so this stays below search.MaxDepth.
const MaxRequestDepth = 8

var ErrInvalidPayload = errors.New("invalid payload")

// MoveRequest represents a request for the best move in a position.
type MoveRequest struct {
	// Player is the side to move: 1 for black, 2 for white.
	Player int `json:"player"`

	// Board holds 8 rows of 8 squares, each 0 (empty), 1 (black) or 2 (white).
	Board [][]int `json:"board"`

	// Moves optionally restricts the candidate moves, each a [row, col] pair.
	// All legal moves are used when it is missing.
	Moves [][]int `json:"moves,omitempty"`

	// Depth optionally overrides the configured search depth.
	Depth *int `json:"depth,omitempty"`
}

// Validate checks the shape of the request. Legality of moves is checked when searching.
func (r MoveRequest) Validate() error {
	if len(r.Board) != othello.Size {
		return fmt.Errorf("%w: board must have %d rows, got %d", ErrInvalidPayload, othello.Size, len(r.Board))
	}

	for i, row := range r.Board {
		if len(row) != othello.Size {
			return fmt.Errorf("%w: row %d must have %d squares, got %d", ErrInvalidPayload, i, othello.Size, len(row))
		}
	}

	if r.Depth != nil && (*r.Depth < 0 || *r.Depth > MaxRequestDepth) {
		return fmt.Errorf("%w: depth must be between 0 and %d", ErrInvalidPayload, MaxRequestDepth)
	}

	_, err := r.Input()
	return err
}

// Input converts the request to the bot input.
func (r MoveRequest) Input() (*othello.Input, error) {
	var input othello.Input
	var err error

	if input.Player, err = othello.ParsePlayer(r.Player); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	for row := range min(len(r.Board), othello.Size) {
		for col := range min(len(r.Board[row]), othello.Size) {
			if input.Grid[row][col], err = othello.ParseColor(r.Board[row][col]); err != nil {
				return nil, fmt.Errorf("%w: square %d %d: %w", ErrInvalidPayload, row, col, err)
			}
		}
	}

	if r.Moves != nil {
		input.Moves = make([]othello.Cell, 0, len(r.Moves))
		for i, move := range r.Moves {
			if len(move) != 2 {
				return nil, fmt.Errorf("%w: move %d must be a [row, col] pair, got %v", ErrInvalidPayload, i, move)
			}

			cell := othello.Cell{Row: move[0], Col: move[1]}
			if !cell.InBounds() {
				return nil, fmt.Errorf("%w: move %s is off the board", ErrInvalidPayload, cell)
			}
			input.Moves = append(input.Moves, cell)
		}
	}

	return &input, nil
}

// MoveResponse represents the best move found for a MoveRequest.
type MoveResponse struct {
	ID      string             `json:"id"`
	Move    *othello.Cell      `json:"move"`
	Score   int                `json:"score"`
	Scores  []search.MoveScore `json:"scores"`
	Nodes   uint64             `json:"nodes"`
	Depth   int                `json:"depth"`
	Cached  bool               `json:"cached"`
	Elapsed float64            `json:"elapsed"`
}

// Analysis represents a search result as stored in the analyses table.
type Analysis struct {
	ID         string        `json:"id"         db:"id"`
	State      string        `json:"state"      db:"state"`
	Depth      int           `json:"depth"      db:"depth"`
	Horizon    string        `json:"horizon"    db:"horizon"`
	Policy     string        `json:"policy"     db:"policy"`
	Move       string        `json:"move"       db:"move"`
	Score      int           `json:"score"      db:"score"`
	Nodes      int64         `json:"nodes"      db:"nodes"`
	Candidates Candidates    `json:"candidates" db:"candidates"`
	Scores     pq.Int64Array `json:"scores"     db:"scores"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// Candidates is a list of moves stored as a postgres text array of fields, like "{d3,c4}".
type Candidates []othello.Cell

// Scan implements the sql.Scanner interface for Candidates
func (c *Candidates) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		if str, isString := value.(string); isString {
			bytes = []byte(str)
		} else {
			return fmt.Errorf("cannot scan %T into Candidates", value)
		}
	}

	if bytes == nil {
		return errors.New("cannot scan nil into Candidates")
	}

	s := strings.Trim(string(bytes), "{}")

	if s == "" {
		*c = Candidates{}
		return nil
	}

	parts := strings.Split(s, ",")

	cells := make(Candidates, len(parts))
	for i, part := range parts {
		cell, err := othello.FieldToCell(part)
		if err != nil {
			return fmt.Errorf("cannot convert %s to move: %w", part, err)
		}
		cells[i] = cell
	}
	*c = cells

	return nil
}

// Value implements the driver.Valuer interface for Candidates
func (c Candidates) Value() (driver.Value, error) {
	fields := make([]string, len(c))
	for i, cell := range c {
		fields[i] = cell.Field()
	}

	return "{" + strings.Join(fields, ",") + "}", nil
}
