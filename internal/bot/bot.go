package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lk16/flippy-bot/internal/models"
	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/repository"
	"github.com/lk16/flippy-bot/internal/search"
)

// Bot answers best move requests, using the Redis cache and recording fresh analyses.
type Bot struct {
	repo     *repository.AnalysisRepository
	options  search.Options
	cacheTTL time.Duration
}

// New creates a new Bot.
func New(repo *repository.AnalysisRepository, options search.Options, cacheTTL time.Duration) *Bot {
	return &Bot{
		repo:     repo,
		options:  options,
		cacheTTL: cacheTTL,
	}
}

// BestMove finds the best move for a request. A position without candidate moves
// gives a response without a move.
func (b *Bot) BestMove(ctx context.Context, req models.MoveRequest) (*models.MoveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	input, err := req.Input()
	if err != nil {
		return nil, err
	}

	root, err := input.State()
	if err != nil {
		return nil, err
	}

	options := b.options
	if req.Depth != nil {
		options.Depth = *req.Depth
	}

	fingerprint := Fingerprint(root, input.Moves, options)

	cached, found, err := b.repo.GetCachedBestMove(ctx, fingerprint)
	if err != nil {
		slog.Warn("Failed to read best move cache", "error", err)
	} else if found {
		cached.Cached = true
		return cached, nil
	}

	searcher, err := search.NewSearcher(options)
	if err != nil {
		return nil, err
	}

	response := &models.MoveResponse{
		ID:     uuid.New().String(),
		Depth:  options.Depth,
		Scores: []search.MoveScore{},
	}

	result, err := searcher.BestMove(root, input.Candidates(root))
	if err != nil && !errors.Is(err, search.ErrNoMoves) {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	if err == nil {
		move := result.Move
		response.Move = &move
		response.Score = result.Score
		response.Scores = result.Scores
		response.Nodes = result.Nodes
		response.Elapsed = result.Elapsed.Seconds()
	}

	if err = b.repo.CacheBestMove(ctx, fingerprint, response, b.cacheTTL); err != nil {
		slog.Warn("Failed to cache best move", "error", err)
	}

	if response.Move != nil {
		if err = b.repo.RecordAnalysis(ctx, newAnalysis(root, options, response)); err != nil {
			slog.Error("Failed to record analysis", "id", response.ID, "error", err)
		}
	}

	return response, nil
}

// IsClientError returns whether err is caused by the request rather than the server.
func IsClientError(err error) bool {
	return errors.Is(err, models.ErrInvalidPayload) ||
		errors.Is(err, othello.ErrIllegalMove) ||
		errors.Is(err, othello.ErrInvalidInput)
}

// Fingerprint identifies a search: the root state, the candidate moves and the search options.
func Fingerprint(root othello.State, candidates []othello.Cell, options search.Options) string {
	fields := "all"
	if candidates != nil {
		names := make([]string, len(candidates))
		for i, cell := range candidates {
			names[i] = cell.Field()
		}
		fields = strings.Join(names, ",")
	}

	return fmt.Sprintf("%s:%d:%s:%s:%s", root, options.Depth, options.Horizon, options.RootPolicy, fields)
}

func newAnalysis(root othello.State, options search.Options, response *models.MoveResponse) models.Analysis {
	candidates := make(models.Candidates, len(response.Scores))
	scores := make(pq.Int64Array, len(response.Scores))

	for i, moveScore := range response.Scores {
		candidates[i] = moveScore.Move
		scores[i] = int64(moveScore.Score)
	}

	return models.Analysis{
		ID:         response.ID,
		State:      root.String(),
		Depth:      options.Depth,
		Horizon:    string(options.Horizon),
		Policy:     string(options.RootPolicy),
		Move:       response.Move.Field(),
		Score:      response.Score,
		Nodes:      int64(response.Nodes), //nolint:gosec
		Candidates: candidates,
		Scores:     scores,
		CreatedAt:  time.Now(),
	}
}
