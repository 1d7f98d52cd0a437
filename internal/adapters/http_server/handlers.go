package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"tripster/internal/adapters/observability"
	"tripster/internal/app"
	"tripster/internal/domain"
)

type Handlers struct {
	P *app.PlanService
	Q *app.QueryService
	// Limiter throttles plan generation; nil disables.
	Limiter *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type planRequest struct {
	Destination  string  `json:"destination"`
	Days         int     `json:"days"`
	NumberOfDays int     `json:"numberOfDays"` // legacy alias for days
	Budget       float64 `json:"budget"`
	People       int     `json:"people"`
	HotelArea    string  `json:"hotelArea"`
	VegOnly      bool    `json:"vegOnly"`
	MealsPerDay  int     `json:"mealsPerDay"`
}

type budgetTooLowResponse struct {
	Error         string                `json:"error"`
	Message       string                `json:"message"`
	Title         string                `json:"title"`
	MinimumBudget app.MinimumBudgetView `json:"minimum_budget"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	var plan chi.Router = s.mux
	if h.Limiter != nil {
		plan = s.mux.With(RateLimit(h.Limiter))
	}
	plan.Post("/v1/itineraries", h.planTrip)
	s.mux.Get("/v1/itineraries/{id}", h.getItinerary)
	s.mux.Get("/v1/destinations", h.listDestinations)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) planTrip(w http.ResponseWriter, r *http.Request) {
	var in planRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	days := in.Days
	if days == 0 {
		days = in.NumberOfDays
	}
	req := domain.TripRequest{
		Destination: in.Destination,
		Days:        days,
		Budget:      in.Budget,
		People:      in.People,
		HotelArea:   in.HotelArea,
		VegOnly:     in.VegOnly,
		MealsPerDay: in.MealsPerDay,
	}

	start := time.Now()
	it, err := h.P.Plan(r.Context(), req)
	if err != nil {
		h.rejectPlan(w, err, time.Since(start))
		return
	}
	observability.ObservePlan("ok", time.Since(start))
	writeJSON(w, http.StatusCreated, app.ViewOf(it))
}

// rejectPlan maps planner failures onto problem responses. BudgetTooLow is a
// structured decline with the floor attached, not a bare problem document.
func (h *Handlers) rejectPlan(w http.ResponseWriter, err error, dur time.Duration) {
	var tooLow *domain.BudgetTooLowError
	switch {
	case errors.As(err, &tooLow):
		observability.ObservePlan("budget_too_low", dur)
		writeJSON(w, http.StatusUnprocessableEntity, budgetTooLowResponse{
			Error: "budget_too_low",
			Message: fmt.Sprintf("Minimum estimated budget is ₹%.0f for %d days and %d people.",
				tooLow.Estimate.TotalMin, tooLow.Estimate.Days, tooLow.Estimate.People),
			MinimumBudget: app.MinimumView(tooLow.Estimate),
		})
	case errors.Is(err, domain.ErrDestinationNotFound):
		observability.ObservePlan("destination_not_found", dur)
		writeProblem(w, http.StatusNotFound, "Destination Not Found", err.Error())
	case errors.Is(err, domain.ErrInsufficientCatalogData):
		observability.ObservePlan("insufficient_catalog", dur)
		writeProblem(w, http.StatusUnprocessableEntity, "Insufficient Catalog Data", err.Error())
	case errors.Is(err, domain.ErrInvalidBudget), errors.Is(err, domain.ErrInvalidRequest):
		observability.ObservePlan("invalid", dur)
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	default:
		observability.ObservePlan("error", dur)
		log.Error().Err(err).Msg("plan failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "itinerary generation failed")
	}
}

func (h *Handlers) getItinerary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.Q.GetItinerary(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "itinerary not found")
		return
	}

	etag, body := calcETagAndBody(app.ViewOf(it))
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getItinerary body")
	}
}

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Destinations(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "destination listing failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"destinations": out})
}
