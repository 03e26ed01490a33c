package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	// Move routes
	apiGroup.Post("/moves/best", BestMove)

	// Analysis routes
	apiGroup.Get("/analyses", GetAnalyses)
}
