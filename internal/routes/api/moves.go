package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/bot"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/lk16/flippy-bot/internal/middleware"
	"github.com/lk16/flippy-bot/internal/models"
	"github.com/lk16/flippy-bot/internal/repository"
)

// NewBot creates a Bot from the services and config stored in the fiber context.
func NewBot(c *fiber.Ctx) *bot.Bot {
	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	return bot.New(repository.NewAnalysisRepository(c), cfg.Bot.Search, cfg.CacheTTL)
}

// BestMove handles best move requests
func BestMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := NewBot(c).BestMove(c.Context(), payload)
	if err != nil {
		status := fiber.StatusInternalServerError
		if bot.IsClientError(err) {
			status = fiber.StatusBadRequest
		}

		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Locals(middleware.NodesLocal, response.Nodes)

	return c.Status(fiber.StatusOK).JSON(response)
}
