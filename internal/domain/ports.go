package domain

import "context"

// CatalogRepository serves the static, per-destination reference dataset.
// Implementations are read-only after startup; concurrent readers need no
// synchronization.
type CatalogRepository interface {
	Lookup(ctx context.Context, destination string) (Catalog, error)
	Destinations(ctx context.Context) ([]DestinationSummary, error)
}

// ItineraryStore persists finished itineraries keyed by their id.
type ItineraryStore interface {
	Save(ctx context.Context, it Itinerary) error
	Get(ctx context.Context, id string) (Itinerary, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
