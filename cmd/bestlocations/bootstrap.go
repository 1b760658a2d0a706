package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bestlocations/internal/seed"
)

// bootstrapSamples fills an empty store with the sample places. Existing
// data is never touched.
func bootstrapSamples(ctx context.Context, s seed.Store) error {
	seeded, err := seed.EnsureSamples(ctx, s)
	if err != nil {
		return fmt.Errorf("bootstrap sample places: %w", err)
	}
	if seeded {
		log.Info().Int("count", len(seed.Samples())).Msg("seeded sample places")
	} else {
		log.Debug().Msg("store already has places, skipping seed")
	}
	return nil
}
