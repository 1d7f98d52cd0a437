package app

import (
	"context"
	"fmt"

	"tripster/internal/domain"
	"tripster/internal/planner"
)

// PlanService drives a plan request end to end: run the assembler, persist
// the result, warm the read cache. Persistence failure fails the request —
// the contract is that a returned itinerary is retrievable by id.
type PlanService struct {
	asm      *planner.Assembler
	store    domain.ItineraryStore
	cache    domain.Cache
	cacheTTL int // seconds
}

func NewPlanService(asm *planner.Assembler, store domain.ItineraryStore, cache domain.Cache, cacheTTLSec int) *PlanService {
	return &PlanService{asm: asm, store: store, cache: cache, cacheTTL: cacheTTLSec}
}

func (s *PlanService) Plan(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	it, err := s.asm.Plan(ctx, req)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if err := s.store.Save(ctx, it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("save itinerary %s: %w", it.ID, err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, itineraryKey(it.ID), it, s.cacheTTL)
	}
	return it, nil
}

func itineraryKey(id string) string { return "itinerary:" + id }
