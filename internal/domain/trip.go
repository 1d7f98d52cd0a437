package domain

import (
	"fmt"
	"strings"
)

type TravelerType string

const (
	TravelerSolo   TravelerType = "solo"
	TravelerCouple TravelerType = "couple"
	TravelerGroup  TravelerType = "group"
)

// TripRequest is the validated input to the planner. It lives only for the
// duration of one plan request.
type TripRequest struct {
	Destination string
	Days        int
	Budget      float64
	People      int

	// optional preferences
	HotelArea   string
	VegOnly     bool
	MealsPerDay int // 0 means "use default"
}

// Normalize fills defaults and canonicalizes free-text fields.
func (r *TripRequest) Normalize(defaultMealsPerDay int) {
	r.Destination = strings.TrimSpace(r.Destination)
	r.HotelArea = strings.ToLower(strings.TrimSpace(r.HotelArea))
	if r.HotelArea == "any" {
		r.HotelArea = ""
	}
	if r.MealsPerDay <= 0 {
		r.MealsPerDay = defaultMealsPerDay
	}
}

func (r TripRequest) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("destination is required: %w", ErrInvalidRequest)
	}
	if r.Days <= 0 {
		return fmt.Errorf("days must be positive: %w", ErrInvalidRequest)
	}
	if r.People <= 0 {
		return fmt.Errorf("people must be positive: %w", ErrInvalidRequest)
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be positive: %w", ErrInvalidBudget)
	}
	return nil
}

// Traveler derives the traveler-type tag from the party size.
func (r TripRequest) Traveler() TravelerType {
	switch {
	case r.People <= 1:
		return TravelerSolo
	case r.People == 2:
		return TravelerCouple
	default:
		return TravelerGroup
	}
}
