package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationNotFound: the catalog has no entry for the destination.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrInvalidRequest: a request field fails basic validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidBudget: budget is non-positive.
	ErrInvalidBudget = errors.New("invalid budget")
	// ErrInsufficientCatalogData: a destination has zero hotels or zero
	// restaurants, so no budget floor can be computed.
	ErrInsufficientCatalogData = errors.New("insufficient catalog data")
	// ErrItineraryNotFound: no stored itinerary under the requested id.
	ErrItineraryNotFound = errors.New("itinerary not found")
)

// BudgetTooLowError is a structured decline, not a hard failure: it carries
// the computed floor so the caller can retry with a higher budget.
type BudgetTooLowError struct {
	Budget   float64
	Estimate MinimumBudgetEstimate
}

func (e *BudgetTooLowError) Error() string {
	return fmt.Sprintf("budget %.0f below estimated minimum %.0f", e.Budget, e.Estimate.TotalMin)
}
