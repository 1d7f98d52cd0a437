package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tripster/internal/domain"
)

// Repo stores finished itineraries as JSON documents keyed by id.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Save(ctx context.Context, it domain.Itinerary) error {
	payload, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("marshal itinerary %s: %w", it.ID, err)
	}
	_, err = r.db.ExecContext(ctx, insertItinerarySQL, it.ID, it.Destination, payload, it.CreatedAt)
	return err
}

func (r *Repo) Get(ctx context.Context, id string) (domain.Itinerary, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, getItinerarySQL, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Itinerary{}, fmt.Errorf("%s: %w", id, domain.ErrItineraryNotFound)
	}
	if err != nil {
		return domain.Itinerary{}, err
	}
	var it domain.Itinerary
	if err := json.Unmarshal(payload, &it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("unmarshal itinerary %s: %w", id, err)
	}
	return it, nil
}
