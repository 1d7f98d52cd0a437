// Package catalog loads the static per-destination dataset (attractions,
// hotels, restaurants) from JSON files and serves it as process-wide
// read-only state.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripster/internal/domain"
)

// loadConcurrency bounds the parallel file parses during startup load.
const loadConcurrency = 4

// Store is an immutable in-memory catalog keyed by lower-cased destination
// name. Safe for concurrent readers without locking once Load returns.
type Store struct {
	byDest map[string]domain.Catalog
}

// file schema, one destination per .json file
type catalogFile struct {
	Destination string `json:"destination"`
	Center      *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"center"`
	Attractions []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		EntryFee float64 `json:"entry_fee"`
		Duration float64 `json:"duration_hours"`
		Rating   float64 `json:"rating"`
		Category string  `json:"category"`
	} `json:"attractions"`
	Hotels []struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Area          string  `json:"area"`
		PricePerNight float64 `json:"price_per_night"`
		Rating        float64 `json:"rating"`
	} `json:"hotels"`
	Restaurants []struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Cuisine       string  `json:"type"`
		CostPerPerson float64 `json:"avg_cost_per_person"`
		Rating        float64 `json:"rating"`
	} `json:"restaurants"`
}

// Load reads every *.json file under dir. Files are parsed concurrently;
// any unreadable or malformed file fails the whole load, since serving a
// partial catalog would silently change planning results.
func Load(ctx context.Context, dir string) (*Store, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var mu sync.Mutex
	byDest := make(map[string]domain.Catalog)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for _, e := range ents {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := loadFile(path)
			if err != nil {
				return err
			}
			key := strings.ToLower(cat.Destination)
			mu.Lock()
			defer mu.Unlock()
			if _, dup := byDest[key]; dup {
				return fmt.Errorf("duplicate catalog entry for %q (%s)", cat.Destination, path)
			}
			byDest[key] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("destinations", len(byDest)).Str("dir", dir).Msg("catalog loaded")
	return &Store{byDest: byDest}, nil
}

func loadFile(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}
	var f catalogFile
	if err := json.Unmarshal(b, &f); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(f.Destination) == "" {
		return domain.Catalog{}, fmt.Errorf("%s: missing destination name", path)
	}
	return normalize(f), nil
}

// normalize maps the file schema onto domain entities with fees in whole
// currency units, durations in hours and ratings clamped to 1..5.
func normalize(f catalogFile) domain.Catalog {
	cat := domain.Catalog{Destination: strings.TrimSpace(f.Destination)}
	if f.Center != nil {
		cat.Center = &domain.Coords{Lat: f.Center.Lat, Lng: f.Center.Lng}
	}
	for _, a := range f.Attractions {
		cat.Attractions = append(cat.Attractions, domain.Attraction{
			ID:          a.ID,
			Name:        a.Name,
			Destination: cat.Destination,
			Lat:         a.Lat,
			Lng:         a.Lng,
			EntryFee:    nonNegative(a.EntryFee),
			Duration:    durationOrDefault(a.Duration),
			Rating:      clampRating(a.Rating),
			Category:    a.Category,
		})
	}
	for _, h := range f.Hotels {
		cat.Hotels = append(cat.Hotels, domain.Hotel{
			ID:            h.ID,
			Name:          h.Name,
			Area:          h.Area,
			PricePerNight: nonNegative(h.PricePerNight),
			Rating:        clampRating(h.Rating),
		})
	}
	for _, r := range f.Restaurants {
		cat.Restaurants = append(cat.Restaurants, domain.Restaurant{
			ID:            r.ID,
			Name:          r.Name,
			Cuisine:       r.Cuisine,
			CostPerPerson: nonNegative(r.CostPerPerson),
			Rating:        clampRating(r.Rating),
		})
	}
	return cat
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// durationOrDefault falls back to two hours for missing/bogus durations.
func durationOrDefault(v float64) float64 {
	if v <= 0 {
		return 2
	}
	return v
}

// clampRating keeps ratings in 1..5; an absent rating becomes a neutral 3.
func clampRating(v float64) float64 {
	switch {
	case v == 0:
		return 3
	case v < 1:
		return 1
	case v > 5:
		return 5
	}
	return v
}

// Lookup returns the catalog for a destination, case-insensitively.
func (s *Store) Lookup(_ context.Context, destination string) (domain.Catalog, error) {
	cat, ok := s.byDest[strings.ToLower(strings.TrimSpace(destination))]
	if !ok {
		return domain.Catalog{}, fmt.Errorf("%q: %w", destination, domain.ErrDestinationNotFound)
	}
	return cat, nil
}

// Destinations lists known destinations with their entry counts, sorted by
// name.
func (s *Store) Destinations(_ context.Context) ([]domain.DestinationSummary, error) {
	out := make([]domain.DestinationSummary, 0, len(s.byDest))
	for _, cat := range s.byDest {
		out = append(out, domain.DestinationSummary{
			Name:        cat.Destination,
			Attractions: len(cat.Attractions),
			Hotels:      len(cat.Hotels),
			Restaurants: len(cat.Restaurants),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
