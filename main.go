package main

import (
	"context"
	"os"

	"healthcharts/app"
	"healthcharts/internal"
	"healthcharts/internal/config"
	"healthcharts/internal/errors"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; environment variables win either way
	_ = godotenv.Load()

	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("[Main] configuration error: %v", err)
		os.Exit(1)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		logger.Error("[Main] pipeline failed (%s): %v", errors.GetCode(err), err)
		os.Exit(1)
	}
}
