package main

import (
	"context"
	"os"

	"EditorialGate/internal/app"
	"EditorialGate/internal/config"
	"EditorialGate/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(ctx, os.Args[1:]); err != nil {
		logger.Error("run stopped", "error", err)
		os.Exit(1)
	}
}
