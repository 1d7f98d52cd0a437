package app

import (
	"context"
	"time"

	"tripster/internal/domain"
)

// QueryService serves reads with a read-through cache in front of the store.
type QueryService struct {
	store    domain.ItineraryStore
	catalog  domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(store domain.ItineraryStore, catalog domain.CatalogRepository, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, catalog: catalog, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) GetItinerary(ctx context.Context, id string) (domain.Itinerary, error) {
	key := itineraryKey(id)
	var it domain.Itinerary
	if ok, _ := s.cache.Get(ctx, key, &it); ok {
		return it, nil
	}
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Itinerary{}, err
	}
	_ = s.cache.Set(ctx, key, it, int(s.cacheTTL.Seconds()))
	return it, nil
}

func (s *QueryService) Destinations(ctx context.Context) ([]domain.DestinationSummary, error) {
	key := "destinations"
	var out []domain.DestinationSummary
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := s.catalog.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
