package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
// Postgres is nil when no database is configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	services := &Services{
		Redis: redis,
	}

	if cfg.PostgresURL == "" {
		return services, nil
	}

	// Initialize database
	services.Postgres, err = InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	return services, nil
}

// Shutdown closes all connections.
// Services must not implement io.Closer: fasthttp closes io.Closer values in request locals.
func (s *Services) Shutdown() error {
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			return err
		}
	}

	if s.Redis != nil {
		return s.Redis.Close()
	}

	return nil
}
