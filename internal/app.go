package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/lk16/flippy-bot/internal/middleware"
	"github.com/lk16/flippy-bot/internal/repository"
	"github.com/lk16/flippy-bot/internal/routes"
	"github.com/lk16/flippy-bot/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 60 * time.Second // Deep searches can take a while
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024 // 64KB
	schemaTimeout       = 10 * time.Second
)

// SetupApp loads the configuration from the environment, connects to external services and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	if err = repository.NewAnalysisRepositoryFromServices(services).EnsureSchema(ctx); err != nil {
		slog.Error("Failed to create database schema", "error", err)
		os.Exit(1)
	}

	app := BuildApp(cfg, services)
	app.Hooks().OnShutdown(services.Shutdown)

	return app, cfg
}

// BuildApp creates the Fiber app with its middleware and routes.
func BuildApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	// Create Fiber app
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging(os.Stdout))

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
