package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/repository"
)

const defaultAnalysesLimit = 20

// GetAnalyses returns the most recent analyses, newest first
func GetAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultAnalysesLimit)

	repo := repository.NewAnalysisRepository(c)
	analyses, err := repo.RecentAnalyses(c.Context(), limit)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, repository.ErrNoDatabase) {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(analyses)
}
