package app

import "tripster/internal/domain"

// Wire-format views. Field names match the public contract: budget_summary,
// minimum_budget, hotel, daily_plan, activities_fee_estimated.

type BudgetSummaryView struct {
	TotalBudget   float64 `json:"total_budget"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

type MinimumBudgetView struct {
	HotelMin      float64 `json:"hotel_min"`
	FoodMin       float64 `json:"food_min"`
	TransportMin  float64 `json:"transport_min"`
	ActivitiesMin float64 `json:"activities_min"`
	TotalMin      float64 `json:"total_min"`
	Assumptions   struct {
		HotelUsed   string `json:"hotel_used"`
		MealsPerDay int    `json:"meals_per_day"`
		People      int    `json:"people"`
	} `json:"assumptions"`
}

type HotelView struct {
	Name           string  `json:"name"`
	Area           string  `json:"area"`
	Rating         float64 `json:"rating"`
	PricePerNight  float64 `json:"price_per_night"`
	Nights         int     `json:"nights"`
	EstimatedTotal float64 `json:"estimated_total"`
	OverBudget     bool    `json:"over_budget,omitempty"`
}

type ActivityView struct {
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	EstFee      float64 `json:"est_fee"`
	Rating      float64 `json:"rating,omitempty"`
}

type RestaurantView struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Cuisine       string  `json:"cuisine,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type DayPlanView struct {
	Day               int              `json:"day"`
	RestDay           bool             `json:"rest_day,omitempty"`
	Activities        []ActivityView   `json:"activities"`
	Restaurants       []RestaurantView `json:"restaurants"`
	FoodCostEstimated float64          `json:"food_cost_estimated"`
}

type TransportAdviceView struct {
	Mode                    string  `json:"mode"`
	PerDayEstimate          float64 `json:"per_day_estimate"`
	AirportTransferEstimate float64 `json:"airport_transfer_estimate"`
	Notes                   string  `json:"notes"`
}

type ItineraryView struct {
	ItineraryID           string              `json:"itinerary_id"`
	Title                 string              `json:"title"`
	TravelerType          string              `json:"traveler_type"`
	BudgetSummary         BudgetSummaryView   `json:"budget_summary"`
	MinimumBudget         MinimumBudgetView   `json:"minimum_budget"`
	Hotel                 *HotelView          `json:"hotel"`
	DailyPlan             []DayPlanView       `json:"daily_plan"`
	ActivitiesFeeEstimate float64             `json:"activities_fee_estimated"`
	TransportAdvice       TransportAdviceView `json:"transport_advice"`
	Disclaimer            string              `json:"disclaimer"`
}

func ViewOf(it domain.Itinerary) ItineraryView {
	v := ItineraryView{
		ItineraryID:  it.ID,
		Title:        it.Title,
		TravelerType: string(it.Traveler),
		BudgetSummary: BudgetSummaryView{
			TotalBudget:   it.Budget.Total,
			Accommodation: it.Budget.Accommodation,
			Food:          it.Budget.Food,
			Activities:    it.Budget.Activities,
			Transport:     it.Budget.Transport,
		},
		MinimumBudget:         MinimumView(it.Minimum),
		ActivitiesFeeEstimate: it.ActivitiesFee,
		TransportAdvice: TransportAdviceView{
			Mode:                    it.Transport.Mode,
			PerDayEstimate:          it.Transport.PerDayEstimate,
			AirportTransferEstimate: it.Transport.AirportTransfer,
			Notes:                   it.Transport.Notes,
		},
		Disclaimer: it.Disclaimer,
	}
	if it.Hotel != nil {
		v.Hotel = &HotelView{
			Name:           it.Hotel.Name,
			Area:           it.Hotel.Area,
			Rating:         it.Hotel.Rating,
			PricePerNight:  it.Hotel.PricePerNight,
			Nights:         it.Hotel.Nights,
			EstimatedTotal: it.Hotel.EstimatedTotal,
			OverBudget:     it.Hotel.OverBudget,
		}
	}
	v.DailyPlan = make([]DayPlanView, 0, len(it.Days))
	for _, d := range it.Days {
		dv := DayPlanView{
			Day:               d.Day,
			RestDay:           d.RestDay,
			Activities:        make([]ActivityView, 0, len(d.Activities)),
			Restaurants:       make([]RestaurantView, 0, len(d.Restaurants)),
			FoodCostEstimated: d.FoodCost,
		}
		for _, a := range d.Activities {
			dv.Activities = append(dv.Activities, ActivityView{
				Time:        a.Time,
				Description: a.Description,
				Type:        a.Type,
				EstFee:      a.EstFee,
				Rating:      a.Rating,
			})
		}
		for _, r := range d.Restaurants {
			dv.Restaurants = append(dv.Restaurants, RestaurantView{
				Name:          r.Name,
				Type:          r.MealType,
				Cuisine:       r.Cuisine,
				Rating:        r.Rating,
				EstimatedCost: r.EstimatedCost,
			})
		}
		v.DailyPlan = append(v.DailyPlan, dv)
	}
	return v
}

// MinimumView maps the floor estimate; also reused by the budget_too_low
// rejection payload.
func MinimumView(m domain.MinimumBudgetEstimate) MinimumBudgetView {
	mv := MinimumBudgetView{
		HotelMin:      m.HotelMin,
		FoodMin:       m.FoodMin,
		TransportMin:  m.TransportMin,
		ActivitiesMin: m.ActivitiesMin,
		TotalMin:      m.TotalMin,
	}
	mv.Assumptions.HotelUsed = m.CheapestHotel
	mv.Assumptions.MealsPerDay = m.MealsPerDay
	mv.Assumptions.People = m.People
	return mv
}
