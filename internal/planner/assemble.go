package planner

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tripster/internal/domain"
)

// Config carries the planner tunables. Zero values are not usable; start
// from DefaultConfig.
type Config struct {
	Proportions           Proportions
	DayHoursCap           float64 // activity hours per day
	ActivityBufferPerDay  float64 // floor buffer, currency units
	TransportBufferPerDay float64
	DefaultMealsPerDay    int
	DayStartHour          int // first activity slot, 24h clock
}

func DefaultConfig() Config {
	return Config{
		Proportions:           DefaultProportions,
		DayHoursCap:           6,
		ActivityBufferPerDay:  300,
		TransportBufferPerDay: 400,
		DefaultMealsPerDay:    2,
		DayStartHour:          9,
	}
}

// Pipeline stages. The flow is strictly forward; rejected is terminal and
// reachable from validating only.
type stage string

const (
	stageValidating     stage = "validating"
	stageAllocating     stage = "allocating"
	stageSelectingHotel stage = "selecting_hotel"
	stageBuildingDays   stage = "building_days"
	stageComplete       stage = "complete"
	stageRejected       stage = "rejected"
)

const disclaimer = "Estimates only. Actual costs vary by season, choice and availability."

// Assembler turns a TripRequest into an Itinerary. Each stage is a pure
// function of the request, the catalog and the previous stage's output; the
// Assembler itself holds no per-request state and is safe for concurrent use.
type Assembler struct {
	catalog domain.CatalogRepository
	cfg     Config
}

func NewAssembler(catalog domain.CatalogRepository, cfg Config) *Assembler {
	return &Assembler{catalog: catalog, cfg: cfg}
}

// Plan runs validating → allocating → selecting_hotel → building_days →
// complete. An under-floor budget rejects with *domain.BudgetTooLowError;
// catalog problems surface as the domain sentinels. A day no attraction fits
// and a hotel over the stay sub-budget are degraded outcomes, not errors.
func (a *Assembler) Plan(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	req.Normalize(a.cfg.DefaultMealsPerDay)
	if err := req.Validate(); err != nil {
		return domain.Itinerary{}, err
	}

	cat, err := a.catalog.Lookup(ctx, req.Destination)
	if err != nil {
		return domain.Itinerary{}, err
	}

	// validating
	est, err := EstimateMinimum(cat, req.Days, req.People, req.MealsPerDay, a.cfg)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if req.Budget < est.TotalMin { // floor is inclusive: equality passes
		log.Debug().
			Str("stage", string(stageRejected)).
			Str("destination", cat.Destination).
			Float64("budget", req.Budget).
			Float64("floor", est.TotalMin).
			Msg("plan rejected")
		return domain.Itinerary{}, &domain.BudgetTooLowError{Budget: req.Budget, Estimate: est}
	}

	log.Debug().
		Str("stage", string(stageValidating)).
		Str("destination", cat.Destination).
		Float64("floor", est.TotalMin).
		Msg("floor accepted")

	// allocating
	budget, err := Allocate(req.Budget, a.cfg.Proportions)
	if err != nil {
		return domain.Itinerary{}, err
	}
	log.Debug().Str("stage", string(stageAllocating)).Float64("activities", budget.Activities).Msg("budget allocated")

	// selecting_hotel
	hotel := selectHotel(cat.Hotels, budget.Accommodation, req.Days, req.HotelArea)
	if hotel != nil && hotel.OverBudget {
		log.Debug().
			Str("stage", string(stageSelectingHotel)).
			Str("hotel", hotel.Name).
			Msg("no hotel fits the stay sub-budget, falling back to cheapest")
	}

	// building_days
	days, feesTotal := a.buildDays(cat, req, budget)
	log.Debug().Str("stage", string(stageBuildingDays)).Int("days", len(days)).Msg("day plans built")

	// complete
	it := domain.Itinerary{
		ID:            newItineraryID(),
		Title:         fmt.Sprintf("Your Awesome %d-Day Trip to %s", req.Days, titleCase(cat.Destination)),
		Destination:   cat.Destination,
		Traveler:      req.Traveler(),
		Budget:        budget,
		Minimum:       est,
		Hotel:         hotel,
		Days:          days,
		ActivitiesFee: math.Round(feesTotal),
		Transport:     transportAdvice(budget.Transport, req.Days, req.People),
		Disclaimer:    disclaimer,
		CreatedAt:     time.Now().UTC(),
	}
	log.Info().
		Str("stage", string(stageComplete)).
		Str("itinerary_id", it.ID).
		Str("destination", cat.Destination).
		Int("days", req.Days).
		Str("traveler", string(it.Traveler)).
		Msg("itinerary assembled")
	return it, nil
}

func (a *Assembler) buildDays(cat domain.Catalog, req domain.TripRequest, budget domain.BudgetSummary) ([]domain.DayPlan, float64) {
	clusters := Cluster(cat.Attractions, req.Days)
	feeCap := budget.Activities / float64(req.Days)
	foodPerDay := budget.Food / float64(req.Days)

	plans := make([]domain.DayPlan, 0, req.Days)
	var feesTotal float64
	for i := 0; i < req.Days; i++ {
		picks := SelectDay(clusters[i], a.cfg.DayHoursCap, feeCap)
		feesTotal += TotalFees(picks)

		meals, foodCost := a.pickMeals(cat.Restaurants, foodPerDay, req.People, req.MealsPerDay, i+1, req.VegOnly)

		plans = append(plans, domain.DayPlan{
			Day:         i + 1,
			RestDay:     len(picks) == 0,
			Activities:  a.schedule(picks),
			Restaurants: meals,
			FoodCost:    math.Ceil(foodCost),
		})
	}
	return plans, feesTotal
}

// schedule lays picks out from the day's start hour, advancing by each
// attraction's duration rounded up to whole hours.
func (a *Assembler) schedule(picks []domain.Attraction) []domain.Activity {
	acts := make([]domain.Activity, 0, len(picks))
	slot := a.cfg.DayStartHour
	for _, p := range picks {
		acts = append(acts, domain.Activity{
			Time:        clockLabel(slot),
			Description: p.Name,
			Type:        "activity",
			EstFee:      p.EntryFee,
			Rating:      p.Rating,
		})
		slot += int(math.Ceil(p.Duration))
	}
	return acts
}

// selectHotel picks the best-rated hotel whose total stay fits the
// accommodation sub-budget, preferring the requested area when one matches.
// When nothing fits it degrades to the cheapest hotel overall, flagged
// over-budget, rather than failing the plan. Returns nil only for an empty
// hotel list (the estimator rejects that case earlier).
func selectHotel(hotels []domain.Hotel, stayBudget float64, nights int, preferredArea string) *domain.HotelChoice {
	if len(hotels) == 0 {
		return nil
	}
	if nights < 1 {
		nights = 1
	}

	var within []domain.Hotel
	for _, h := range hotels {
		if h.PricePerNight*float64(nights) <= stayBudget {
			within = append(within, h)
		}
	}

	pick := func(hs []domain.Hotel) domain.Hotel {
		best := hs[0]
		for _, h := range hs[1:] {
			if h.Rating > best.Rating || (h.Rating == best.Rating && h.PricePerNight < best.PricePerNight) {
				best = h
			}
		}
		return best
	}

	if len(within) > 0 {
		pool := within
		if preferredArea != "" {
			var inArea []domain.Hotel
			for _, h := range within {
				if strings.EqualFold(h.Area, preferredArea) {
					inArea = append(inArea, h)
				}
			}
			if len(inArea) > 0 {
				pool = inArea
			}
		}
		h := pick(pool)
		return &domain.HotelChoice{
			Name:           h.Name,
			Area:           h.Area,
			Rating:         h.Rating,
			PricePerNight:  h.PricePerNight,
			Nights:         nights,
			EstimatedTotal: h.PricePerNight * float64(nights),
		}
	}

	cheapest := hotels[0]
	for _, h := range hotels[1:] {
		if h.PricePerNight < cheapest.PricePerNight {
			cheapest = h
		}
	}
	return &domain.HotelChoice{
		Name:           cheapest.Name,
		Area:           cheapest.Area,
		Rating:         cheapest.Rating,
		PricePerNight:  cheapest.PricePerNight,
		Nights:         nights,
		EstimatedTotal: cheapest.PricePerNight * float64(nights),
		OverBudget:     true,
	}
}

// pickMeals chooses up to mealsPerDay restaurants for one day within the
// daily food sub-budget: best-rated first under the per-meal cap, then the
// cheapest remaining ones that still fit the day total. The ranked order is
// rotated by day so consecutive days get different suggestions while staying
// deterministic.
func (a *Assembler) pickMeals(all []domain.Restaurant, dayBudget float64, people, mealsPerDay, day int, vegOnly bool) ([]domain.RestaurantPick, float64) {
	if len(all) == 0 || mealsPerDay < 1 {
		return nil, 0
	}

	candidates := all
	if vegOnly {
		var veg []domain.Restaurant
		for _, r := range all {
			if r.Vegetarian() {
				veg = append(veg, r)
			}
		}
		if len(veg) > 0 {
			candidates = veg
		}
	}

	ranked := make([]domain.Restaurant, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })
	rot := (day - 1) % len(ranked)
	ranked = append(ranked[rot:], ranked[:rot]...)

	perMealCap := math.Max(1, dayBudget/float64(mealsPerDay)) / float64(people)

	var picks []domain.RestaurantPick
	used := map[string]bool{}
	var total float64

	for _, r := range ranked {
		if len(picks) >= mealsPerDay {
			break
		}
		cost := r.CostPerPerson * float64(people)
		if r.CostPerPerson <= perMealCap && total+cost <= dayBudget {
			picks = append(picks, pickFor(r, cost))
			used[r.Name] = true
			total += cost
		}
	}

	// Fill remaining meals with the cheapest options that keep the day total
	// within budget.
	if len(picks) < mealsPerDay {
		byCost := make([]domain.Restaurant, len(candidates))
		copy(byCost, candidates)
		sort.SliceStable(byCost, func(i, j int) bool { return byCost[i].CostPerPerson < byCost[j].CostPerPerson })
		for _, r := range byCost {
			if len(picks) >= mealsPerDay {
				break
			}
			if used[r.Name] {
				continue
			}
			cost := r.CostPerPerson * float64(people)
			if total+cost <= dayBudget {
				picks = append(picks, pickFor(r, cost))
				used[r.Name] = true
				total += cost
			}
		}
	}

	for i := range picks {
		picks[i].MealType = mealLabel(mealsPerDay, i)
	}
	return picks, total
}

func pickFor(r domain.Restaurant, cost float64) domain.RestaurantPick {
	return domain.RestaurantPick{
		Name:          r.Name,
		Cuisine:       r.Cuisine,
		Rating:        r.Rating,
		EstimatedCost: cost,
	}
}

func mealLabel(mealsPerDay, i int) string {
	switch {
	case mealsPerDay <= 1:
		return "Meal"
	case mealsPerDay == 2:
		if i == 0 {
			return "Lunch"
		}
		return "Dinner"
	default:
		switch i {
		case 0:
			return "Breakfast"
		case 1:
			return "Lunch"
		case 2:
			return "Dinner"
		default:
			return "Meal"
		}
	}
}

// transportAdvice grades the transport sub-budget per day into a suggested
// mode with rough airport-transfer numbers.
func transportAdvice(total float64, days, people int) domain.TransportAdvice {
	if days < 1 {
		days = 1
	}
	perDay := math.Max(0, total/float64(days))

	adv := domain.TransportAdvice{
		Mode:            "public transit + short autos",
		PerDayEstimate:  math.Round(perDay),
		AirportTransfer: 800,
		Notes:           "Use metro/bus for most hops. Take autos/ride-hailing for the last mile or late hours.",
	}
	switch {
	case perDay >= 1500:
		adv.Mode = "ride-hailing/cabs as primary"
		adv.AirportTransfer = 1200
		adv.Notes = "Plan 4-5 cab rides per day. Consider a 1-day car rental if doing far-spread sights."
	case perDay >= 800:
		adv.Mode = "mixed: transit + 2-3 cab rides/day"
		adv.AirportTransfer = 1000
		adv.Notes = "Transit for long hops; cabs for convenience or evenings."
	case perDay <= 300:
		adv.Mode = "mostly transit + walking"
		adv.AirportTransfer = 600
		adv.Notes = "Stick to buses/metro and walk between nearby sights."
	}
	if people >= 4 && perDay >= 800 {
		adv.Mode = "group: cab/6-seater or day rental"
		adv.Notes = "For 4+ people, shared cabs/day rental often cheaper than multiple singles."
	}
	return adv
}

func clockLabel(hour int) string {
	h := hour % 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h
	if display > 12 {
		display -= 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// newItineraryID returns a fresh, collision-resistant identifier.
func newItineraryID() string {
	b := make([]byte, 8)
	_, _ = crand.Read(b)
	return "itn_" + hex.EncodeToString(b)
}
