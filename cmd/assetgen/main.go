package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/glizzus/assetgen/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No .env file found, continuing without it")
		} else {
			log.Fatalf("Failed to load .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		slog.Error("assetgen failed", slog.Any("error", err))
		os.Exit(1)
	}
}
