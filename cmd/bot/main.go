package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/flippy-bot/internal/cmd/move"
	"github.com/lk16/flippy-bot/internal/config"
)

func main() {
	config.Init()

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input> <output>\n", os.Args[0])
		os.Exit(2)
	}

	cfg := config.LoadBotConfig()

	if err := move.Run(os.Args[1], os.Args[2], cfg.Search); err != nil {
		slog.Error("Failed to pick a move", "error", err)
		os.Exit(1)
	}
}
