package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/models"
	"github.com/lk16/flippy-bot/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	bestMoveKeyPrefix = "best_move:"
	maxRecentLimit    = 100
)

var ErrNoDatabase = errors.New("no database configured")

const createAnalysesTable = `
	CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY,
		state TEXT NOT NULL,
		depth INTEGER NOT NULL,
		horizon TEXT NOT NULL,
		policy TEXT NOT NULL,
		move TEXT NOT NULL,
		score INTEGER NOT NULL,
		nodes BIGINT NOT NULL,
		candidates TEXT[] NOT NULL,
		scores INTEGER[] NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// AnalysisRepository caches best moves in Redis and records analyses in Postgres.
type AnalysisRepository struct {
	services *services.Services
}

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(c *fiber.Ctx) *AnalysisRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &AnalysisRepository{
		services: services,
	}
}

func NewAnalysisRepositoryFromServices(services *services.Services) *AnalysisRepository {
	return &AnalysisRepository{
		services: services,
	}
}

// BestMoveKey returns the Redis key for a cached best move.
func BestMoveKey(fingerprint string) string {
	return bestMoveKeyPrefix + fingerprint
}

// GetCachedBestMove looks up a cached response. The bool is false if nothing is cached.
func (repo *AnalysisRepository) GetCachedBestMove(
	ctx context.Context,
	fingerprint string,
) (*models.MoveResponse, bool, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, BestMoveKey(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error getting cached best move: %w", err)
	}

	var response models.MoveResponse
	if err = json.Unmarshal(jsonData, &response); err != nil {
		return nil, false, fmt.Errorf("error unmarshaling cached best move: %w", err)
	}

	return &response, true, nil
}

// CacheBestMove stores a response for ttl.
func (repo *AnalysisRepository) CacheBestMove(
	ctx context.Context,
	fingerprint string,
	response *models.MoveResponse,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("error marshaling best move: %w", err)
	}

	redisConn := repo.services.Redis

	if err = redisConn.Set(ctx, BestMoveKey(fingerprint), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("error caching best move: %w", err)
	}

	return nil
}

// EnsureSchema creates the analyses table if it does not exist.
func (repo *AnalysisRepository) EnsureSchema(ctx context.Context) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil
	}

	if _, err := pgConn.ExecContext(ctx, createAnalysesTable); err != nil {
		return fmt.Errorf("error creating analyses table: %w", err)
	}

	return nil
}

// RecordAnalysis stores an analysis. It does nothing when no database is configured.
func (repo *AnalysisRepository) RecordAnalysis(ctx context.Context, analysis models.Analysis) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil
	}

	query := `
		INSERT INTO analyses (id, state, depth, horizon, policy, move, score, nodes, candidates, scores, created_at)
		VALUES (:id, :state, :depth, :horizon, :policy, :move, :score, :nodes, :candidates, :scores, :created_at)
	`

	if _, err := pgConn.NamedExecContext(ctx, query, analysis); err != nil {
		return fmt.Errorf("error recording analysis: %w", err)
	}

	return nil
}

// RecentAnalyses returns up to limit analyses, newest first.
func (repo *AnalysisRepository) RecentAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil, ErrNoDatabase
	}

	if limit <= 0 || limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	query := `
		SELECT id, state, depth, horizon, policy, move, score, nodes, candidates, scores, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1
	`

	analyses := make([]models.Analysis, 0)
	if err := pgConn.SelectContext(ctx, &analyses, query, limit); err != nil {
		return nil, fmt.Errorf("error looking up analyses: %w", err)
	}

	return analyses, nil
}
