package main

import (
	"context"
	"log/slog"
	"os"

	"admarket/internal/app/bootstrap"

	"github.com/joho/godotenv"
)

// API process entrypoint.
// Data flow:
// 1) Load env and config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app, err := bootstrap.BuildAPI()
	if err != nil {
		logger.Error("api bootstrap failed",
			"event", "bootstrap_failed",
			"module", "cmd/api",
			"error", err.Error(),
		)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(context.Background()); err != nil {
		logger.Error("api run failed",
			"event", "api_run_failed",
			"module", "cmd/api",
			"error", err.Error(),
		)
		os.Exit(1)
	}
}
