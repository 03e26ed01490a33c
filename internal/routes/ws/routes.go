package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy-bot/internal/bot"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/lk16/flippy-bot/internal/repository"
	"github.com/lk16/flippy-bot/internal/services"
	"github.com/lk16/flippy-bot/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)     //nolint: errcheck

	repo := repository.NewAnalysisRepositoryFromServices(services)

	h := ws.NewHandler(c, bot.New(repo, cfg.Bot.Search, cfg.CacheTTL))
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeOnly rejects plain HTTP requests to the websocket route.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", upgradeOnly, websocket.New(handleWs))
}
