package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"bestlocations/internal/config"
	"bestlocations/internal/logging"
	"bestlocations/internal/seed"
	"bestlocations/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Setup(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	placeStore, closeStore, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore(context.Background())

	n, err := seed.Reset(ctx, placeStore)
	if err != nil {
		return err
	}

	log.Info().Int("count", n).Str("backend", cfg.Store.Backend).Msg("places reset to sample data")
	return nil
}
