package domain

import "time"

// BudgetSummary splits a total budget into category sub-budgets.
// Invariant: the four categories sum exactly to Total.
type BudgetSummary struct {
	Total         float64
	Accommodation float64
	Food          float64
	Activities    float64
	Transport     float64
}

// MinimumBudgetEstimate is the conservative floor a request must meet,
// with its per-category breakdown.
type MinimumBudgetEstimate struct {
	HotelMin      float64
	FoodMin       float64
	TransportMin  float64
	ActivitiesMin float64
	TotalMin      float64

	// assumptions behind the floor
	CheapestHotel string
	Days          int
	MealsPerDay   int
	People        int
}

type Activity struct {
	Time        string // "9:00 AM"
	Description string
	Type        string
	EstFee      float64
	Rating      float64
}

type RestaurantPick struct {
	Name          string
	MealType      string // Breakfast|Lunch|Dinner|Meal
	Cuisine       string
	Rating        float64
	EstimatedCost float64 // whole party, one meal
}

type DayPlan struct {
	Day         int
	RestDay     bool
	Activities  []Activity
	Restaurants []RestaurantPick
	FoodCost    float64
}

type HotelChoice struct {
	Name           string
	Area           string
	Rating         float64
	PricePerNight  float64
	Nights         int
	EstimatedTotal float64
	// OverBudget flags the cheapest-available fallback when nothing fits
	// the stay sub-budget.
	OverBudget bool
}

type TransportAdvice struct {
	Mode            string
	PerDayEstimate  float64
	AirportTransfer float64
	Notes           string
}

// Itinerary is the assembled plan. Immutable after creation; persisted by
// the storage boundary under its ID.
type Itinerary struct {
	ID            string
	Title         string
	Destination   string
	Traveler      TravelerType
	Budget        BudgetSummary
	Minimum       MinimumBudgetEstimate
	Hotel         *HotelChoice
	Days          []DayPlan
	ActivitiesFee float64
	Transport     TransportAdvice
	Disclaimer    string
	CreatedAt     time.Time
}
