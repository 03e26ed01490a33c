package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lk16/flippy-bot/internal/cmd/selfplay"
	"github.com/lk16/flippy-bot/internal/config"
	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
)

func main() {
	config.Init()
	cfg := config.LoadBotConfig()

	blackDepth := flag.Int("black-depth", cfg.Search.Depth, "search depth for black")
	whiteDepth := flag.Int("white-depth", cfg.Search.Depth, "search depth for white")
	flag.Parse()

	black, err := newSearcher(cfg.Search, *blackDepth)
	if err != nil {
		slog.Error("Invalid options for black", "error", err)
		os.Exit(1)
	}

	white, err := newSearcher(cfg.Search, *whiteDepth)
	if err != nil {
		slog.Error("Invalid options for white", "error", err)
		os.Exit(1)
	}

	if _, err = selfplay.Play(othello.NewGame(), black, white, os.Stdout); err != nil {
		slog.Error("Self-play failed", "error", err)
		os.Exit(1)
	}
}

func newSearcher(options search.Options, depth int) (*search.Searcher, error) {
	options.Depth = depth
	return search.NewSearcher(options)
}
