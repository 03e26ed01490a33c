package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lk16/flippy-bot/internal/evaluate"
	"github.com/lk16/flippy-bot/internal/othello"
)

const (
	DefaultDepth = 6
	MaxDepth     = 12
)

var ErrNoMoves = errors.New("no moves to choose from")

// Horizon selects the evaluator used when the depth runs out before the game ends.
type Horizon string

const (
	// HorizonInterior scores depth-exhausted nodes with evaluate.Interior.
	HorizonInterior Horizon = "interior"

	// HorizonLeaf scores depth-exhausted nodes with evaluate.Leaf.
	HorizonLeaf Horizon = "leaf"
)

// RootPolicy selects how BestMove compares the scores of root moves.
type RootPolicy string

const (
	// RootSideToMove picks the highest score for Black and the lowest score for White.
	RootSideToMove RootPolicy = "side"

	// RootArgmax always picks the highest score, whichever side is to move.
	RootArgmax RootPolicy = "argmax"
)

// Options configures a Searcher.
type Options struct {
	Depth      int
	Horizon    Horizon
	RootPolicy RootPolicy
}

// DefaultOptions returns the options the bot plays with.
func DefaultOptions() Options {
	return Options{
		Depth:      DefaultDepth,
		Horizon:    HorizonInterior,
		RootPolicy: RootArgmax,
	}
}

// Validate checks that the options can be used for searching.
func (o Options) Validate() error {
	if o.Depth < 0 || o.Depth > MaxDepth {
		return fmt.Errorf("depth must be between 0 and %d, got %d", MaxDepth, o.Depth)
	}

	switch o.Horizon {
	case HorizonInterior, HorizonLeaf:
	default:
		return fmt.Errorf("unknown horizon evaluator: %q", o.Horizon)
	}

	switch o.RootPolicy {
	case RootSideToMove, RootArgmax:
	default:
		return fmt.Errorf("unknown root policy: %q", o.RootPolicy)
	}

	return nil
}

// MoveScore is the search score of one root move.
type MoveScore struct {
	Move  othello.Cell `json:"move"`
	Score int          `json:"score"`
}

// Result is the outcome of BestMove.
type Result struct {
	Move    othello.Cell
	Score   int
	Scores  []MoveScore
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher runs minimax searches with alpha-beta pruning. It is not safe for concurrent use.
type Searcher struct {
	options   Options
	startTime time.Time
	nodes     uint64
}

// NewSearcher creates a new Searcher.
func NewSearcher(options Options) (*Searcher, error) {
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}

	return &Searcher{options: options}, nil
}

// Options returns the options of the searcher.
func (s *Searcher) Options() Options {
	return s.options
}

// Nodes returns the number of nodes visited since the searcher was created or last reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Reset clears the node statistics.
func (s *Searcher) Reset() {
	s.nodes = 0
	s.startTime = time.Now()
}

// Search returns the minimax value of state, searching depth plies with bounds alpha and beta.
// Black maximizes and White minimizes, mover is the side whose choice is made at this node.
func (s *Searcher) Search(state othello.State, depth, alpha, beta int, mover othello.Color) int {
	s.nodes++

	if depth == 0 {
		return s.horizon(state)
	}

	if state.IsTerminal() {
		return evaluate.Leaf(state)
	}

	// Children are created one at a time, so only the current path is kept alive.
	if mover == othello.Black {
		value := math.MinInt
		for _, move := range state.Moves() {
			child, _ := state.DoMove(move)
			value = max(value, s.Search(child, depth-1, alpha, beta, child.Turn()))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.MaxInt
	for _, move := range state.Moves() {
		child, _ := state.DoMove(move)
		value = min(value, s.Search(child, depth-1, alpha, beta, child.Turn()))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

func (s *Searcher) horizon(state othello.State) int {
	if s.options.Horizon == HorizonLeaf {
		return evaluate.Leaf(state)
	}
	return evaluate.Interior(state)
}

// BestMove applies every candidate to root and searches the resulting state with the configured depth.
// The first candidate with the best score wins. When candidates is nil, the legal moves of root are used.
func (s *Searcher) BestMove(root othello.State, candidates []othello.Cell) (Result, error) {
	if candidates == nil {
		candidates = root.Moves()
	}

	if len(candidates) == 0 {
		return Result{}, ErrNoMoves
	}

	s.Reset()

	maximize := s.options.RootPolicy == RootArgmax || root.Turn() == othello.Black

	result := Result{
		Scores: make([]MoveScore, 0, len(candidates)),
	}

	for i, move := range candidates {
		child, err := root.DoMove(move)
		if err != nil {
			return Result{}, fmt.Errorf("candidate %d: %w", i, err)
		}

		score := s.Search(child, s.options.Depth, math.MinInt, math.MaxInt, child.Turn())
		result.Scores = append(result.Scores, MoveScore{Move: move, Score: score})

		if i == 0 || (maximize && score > result.Score) || (!maximize && score < result.Score) {
			result.Move = move
			result.Score = score
		}
	}

	result.Nodes = s.nodes
	result.Elapsed = time.Since(s.startTime)

	s.logStats(root, result)
	return result, nil
}

func (s *Searcher) logStats(root othello.State, result Result) {
	elapsedSeconds := result.Elapsed.Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(result.Nodes) / elapsedSeconds)
	}

	slog.Debug("search done",
		"state", root.String(),
		"depth", s.options.Depth,
		"move", result.Move.Field(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}
