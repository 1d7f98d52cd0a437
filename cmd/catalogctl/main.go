// catalogctl validates the static catalog before it ships: it loads every
// destination file the way the API does and reports per-destination stats,
// failing when a destination could never produce a plan.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"tripster/internal/adapters/observability"
	"tripster/internal/catalog"
	"tripster/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	store, err := catalog.Load(ctx, cfg.CatalogDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.CatalogDir).Msg("catalog load failed")
	}

	sums, err := store.Destinations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("destination listing failed")
	}

	bad := 0
	for _, s := range sums {
		ev := log.Info()
		// zero hotels or restaurants means every plan for this destination
		// would be rejected with insufficient catalog data
		if s.Hotels == 0 || s.Restaurants == 0 {
			ev = log.Error()
			bad++
		} else if s.Attractions == 0 {
			ev = log.Warn()
		}
		ev.
			Str("destination", s.Name).
			Int("attractions", s.Attractions).
			Int("hotels", s.Hotels).
			Int("restaurants", s.Restaurants).
			Msg("destination")
	}

	if bad > 0 {
		log.Error().Int("unplannable", bad).Msg("catalog check failed")
		os.Exit(1)
	}
	log.Info().Int("destinations", len(sums)).Msg("catalog check ok")
}
