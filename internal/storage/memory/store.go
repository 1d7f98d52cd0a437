// Package memory is the dev/test itinerary store: a map behind one mutex so
// the generate-id-then-insert sequence stays atomic.
package memory

import (
	"context"
	"fmt"
	"sync"

	"tripster/internal/domain"
)

type Store struct {
	mu    sync.Mutex
	items map[string]domain.Itinerary
}

func New() *Store {
	return &Store{items: make(map[string]domain.Itinerary)}
}

func (s *Store) Save(_ context.Context, it domain.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[it.ID]; exists {
		return fmt.Errorf("itinerary %s already stored", it.ID)
	}
	s.items[it.ID] = it
	return nil
}

func (s *Store) Get(_ context.Context, id string) (domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return domain.Itinerary{}, fmt.Errorf("%s: %w", id, domain.ErrItineraryNotFound)
	}
	return it, nil
}
