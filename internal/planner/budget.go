package planner

import (
	"fmt"
	"math"
	"sort"

	"tripster/internal/domain"
)

// Proportions are the category shares of the total budget. They must be
// non-negative and sum to 1.
type Proportions struct {
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
}

// DefaultProportions is the 40/25/20/15 split.
var DefaultProportions = Proportions{
	Accommodation: 0.40,
	Food:          0.25,
	Activities:    0.20,
	Transport:     0.15,
}

func (p Proportions) valid() bool {
	if p.Accommodation < 0 || p.Food < 0 || p.Activities < 0 || p.Transport < 0 {
		return false
	}
	sum := p.Accommodation + p.Food + p.Activities + p.Transport
	return math.Abs(sum-1.0) < 1e-9
}

// Allocate splits a positive total budget into category sub-budgets.
// The transport share is computed as the remainder so the four categories
// sum to the total exactly.
func Allocate(total float64, p Proportions) (domain.BudgetSummary, error) {
	if total <= 0 {
		return domain.BudgetSummary{}, fmt.Errorf("total %.2f: %w", total, domain.ErrInvalidBudget)
	}
	if !p.valid() {
		return domain.BudgetSummary{}, fmt.Errorf("proportions must be non-negative and sum to 1: %w", domain.ErrInvalidRequest)
	}
	b := domain.BudgetSummary{
		Total:         total,
		Accommodation: total * p.Accommodation,
		Food:          total * p.Food,
		Activities:    total * p.Activities,
	}
	b.Transport = total - b.Accommodation - b.Food - b.Activities
	return b, nil
}

// EstimateMinimum computes the conservative budget floor for a destination:
// cheapest hotel for every night, the cheapest mealsPerDay restaurant meals
// for every person every day, plus fixed per-day activity and transport
// buffers. The floor is monotone non-decreasing in days and people.
//
// Fails with ErrInsufficientCatalogData when the destination has no hotels
// or no restaurants.
func EstimateMinimum(cat domain.Catalog, days, people, mealsPerDay int, cfg Config) (domain.MinimumBudgetEstimate, error) {
	if len(cat.Hotels) == 0 {
		return domain.MinimumBudgetEstimate{}, fmt.Errorf("%s has no hotels: %w", cat.Destination, domain.ErrInsufficientCatalogData)
	}
	if len(cat.Restaurants) == 0 {
		return domain.MinimumBudgetEstimate{}, fmt.Errorf("%s has no restaurants: %w", cat.Destination, domain.ErrInsufficientCatalogData)
	}

	nights := days
	if nights < 1 {
		nights = 1
	}
	if people < 1 {
		people = 1
	}
	if mealsPerDay < 1 {
		mealsPerDay = cfg.DefaultMealsPerDay
	}

	cheapest := cat.Hotels[0]
	for _, h := range cat.Hotels[1:] {
		if h.PricePerNight < cheapest.PricePerNight {
			cheapest = h
		}
	}

	costs := make([]float64, len(cat.Restaurants))
	for i, r := range cat.Restaurants {
		costs[i] = r.CostPerPerson
	}
	sort.Float64s(costs)
	var mealsPerPersonDay float64
	for m := 0; m < mealsPerDay; m++ {
		if m < len(costs) {
			mealsPerPersonDay += costs[m]
		} else {
			mealsPerPersonDay += costs[0] // fewer restaurants than meals: reuse the cheapest
		}
	}

	est := domain.MinimumBudgetEstimate{
		HotelMin:      cheapest.PricePerNight * float64(nights),
		FoodMin:       mealsPerPersonDay * float64(people) * float64(nights),
		TransportMin:  cfg.TransportBufferPerDay * float64(nights),
		ActivitiesMin: cfg.ActivityBufferPerDay * float64(nights),
		CheapestHotel: cheapest.Name,
		Days:          nights,
		MealsPerDay:   mealsPerDay,
		People:        people,
	}
	est.TotalMin = est.HotelMin + est.FoodMin + est.TransportMin + est.ActivitiesMin
	return est, nil
}
