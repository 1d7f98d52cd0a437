//go:build integration || !unit

package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	httpserver "tripster/internal/adapters/http_server"
	redisad "tripster/internal/adapters/redis"
	"tripster/internal/app"
	"tripster/internal/catalog"
	"tripster/internal/domain"
	"tripster/internal/planner"
	"tripster/internal/storage/memory"
)

// newTestServer wires the whole stack against the testdata catalog, an
// in-memory store and a miniredis-backed cache — the same shape cmd/api
// builds, minus MySQL.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.Load(context.Background(), "testdata")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	store := memory.New()

	asm := planner.NewAssembler(cat, planner.DefaultConfig())
	planSvc := app.NewPlanService(asm, store, cache, 600)
	querySvc := app.NewQueryService(store, cat, cache, 10*time.Minute)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{P: planSvc, Q: querySvc})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestPlanThenFetch(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/itineraries", map[string]any{
		"destination": "Goa",
		"days":        3,
		"budget":      20000,
		"people":      2,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("plan status = %d, want 201", resp.StatusCode)
	}

	var out app.ItineraryView
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode itinerary: %v", err)
	}
	if !strings.HasPrefix(out.ItineraryID, "itn_") {
		t.Fatalf("unexpected id %q", out.ItineraryID)
	}
	if out.TravelerType != "couple" {
		t.Fatalf("traveler_type = %q", out.TravelerType)
	}
	bs := out.BudgetSummary
	if sum := bs.Accommodation + bs.Food + bs.Activities + bs.Transport; sum != bs.TotalBudget {
		t.Fatalf("budget categories sum to %.2f, want %.2f", sum, bs.TotalBudget)
	}
	if len(out.DailyPlan) != 3 {
		t.Fatalf("daily_plan has %d days, want 3", len(out.DailyPlan))
	}
	if out.Hotel == nil || out.Hotel.Name == "" {
		t.Fatalf("expected a hotel choice, got %+v", out.Hotel)
	}

	// Fetch it back by id; the response carries an ETag.
	getResp, err := http.Get(ts.URL + "/v1/itineraries/" + out.ItineraryID)
	if err != nil {
		t.Fatalf("GET itinerary: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", getResp.StatusCode)
	}
	etag := getResp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag on GET")
	}
	var fetched app.ItineraryView
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched: %v", err)
	}
	if fetched.ItineraryID != out.ItineraryID || fetched.Title != out.Title {
		t.Fatalf("fetched itinerary differs: %+v", fetched)
	}

	// Conditional re-read short-circuits.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/itineraries/"+out.ItineraryID, nil)
	req.Header.Set("If-None-Match", etag)
	condResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer condResp.Body.Close()
	if condResp.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional get status = %d, want 304", condResp.StatusCode)
	}
}

func TestGetUnknownItinerary(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/itineraries/itn_nope")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestBudgetTooLowRejection(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/itineraries", map[string]any{
		"destination": "Goa",
		"days":        3,
		"budget":      2000,
		"people":      2,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	var out struct {
		Error         string                `json:"error"`
		Message       string                `json:"message"`
		MinimumBudget app.MinimumBudgetView `json:"minimum_budget"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode rejection: %v", err)
	}
	if out.Error != "budget_too_low" {
		t.Fatalf("error = %q", out.Error)
	}
	if out.MinimumBudget.TotalMin <= 2000 {
		t.Fatalf("floor %.0f should exceed the offered budget", out.MinimumBudget.TotalMin)
	}
	if !strings.Contains(out.Message, "3 days") {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestUnknownDestination(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/itineraries", map[string]any{
		"destination": "Atlantis",
		"days":        2,
		"budget":      50000,
		"people":      2,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListDestinations(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/destinations")
	if err != nil {
		t.Fatalf("GET destinations: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Destinations []domain.DestinationSummary `json:"destinations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Destinations) != 1 || out.Destinations[0].Name != "Goa" {
		t.Fatalf("unexpected destinations: %+v", out.Destinations)
	}
}
