package main

import (
	"context"
	"os"

	"github.com/alqalam/college-backend/internal/bootstrap"
	"github.com/alqalam/college-backend/internal/pkg/logger"
	"github.com/alqalam/college-backend/internal/seed"
)

// Standalone seeder. Connects, migrates and loads the default data, then
// exits. Useful for preparing a fresh database without starting the API.
func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger("configs/config.yaml")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load config")
		os.Exit(1)
	}

	// Disable seeding inside SetupDatabase so it runs exactly once below
	cfg.Seed.Enabled = false

	ctx := context.Background()

	database, err := bootstrap.SetupDatabase(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer database.Close()

	if err := seed.CreateDefaultData(ctx, database.Pool, cfg.Seed); err != nil {
		logger.Error().Err(err).Msg("Seeding finished with errors")
		os.Exit(1)
	}

	logger.Info().Msg("Seeding complete")
}
