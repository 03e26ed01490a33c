package tests

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/flippy-bot/internal"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
	"github.com/lk16/flippy-bot/internal/services"
	"github.com/redis/go-redis/v9"
)

const TestToken = "test-token"

// NewTestServices connects to an in-memory Redis. Postgres may be nil.
func NewTestServices(t testing.TB, postgres *sqlx.DB) (*services.Services, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &services.Services{Redis: client, Postgres: postgres}, mr
}

// NewTestApp builds the app against an in-memory Redis. Postgres may be nil.
// Searches use depth 1 to keep the tests fast.
func NewTestApp(t testing.TB, postgres *sqlx.DB) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()

	svc, mr := NewTestServices(t, postgres)
	return NewTestAppWithServices(svc, mr.Addr()), mr
}

// NewTestAppWithServices builds the app on existing services.
func NewTestAppWithServices(svc *services.Services, redisAddr string) *fiber.App {
	cfg := &config.ServerConfig{
		ServerHost: "localhost",
		ServerPort: "3000",
		RedisURL:   "redis://" + redisAddr,
		Token:      TestToken,
		CacheTTL:   time.Minute,
		Bot: &config.BotConfig{
			Search: search.Options{Depth: 1, Horizon: search.HorizonInterior, RootPolicy: search.RootSideToMove},
		},
	}

	return internal.BuildApp(cfg, svc)
}

// Board converts a grid to the board layout of a move request.
func Board(grid othello.Grid) [][]int {
	board := make([][]int, othello.Size)
	for row := range othello.Size {
		board[row] = make([]int, othello.Size)
		for col := range othello.Size {
			board[row][col] = int(grid[row][col])
		}
	}
	return board
}
