package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want test-key", got)
		}
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestGeneratePlanRemote verifies the client posts the profile with the API
// key and parses the created plan document.
func TestGeneratePlanRemote(t *testing.T) {
	planID := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			var body struct {
				RaceDistance string `json:"race_distance"`
				Seed         int64  `json:"seed"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if body.RaceDistance != "marathon" {
				t.Errorf("race_distance = %q, want marathon", body.RaceDistance)
			}
			if body.Seed != 7 {
				t.Errorf("seed = %d, want 7", body.Seed)
			}

			w.WriteHeader(http.StatusCreated)
			writeTestJSON(t, w, PlanDocument{
				ID: planID, AthleteID: 1,
				Plan: &models.TrainingPlan{Overview: models.PlanOverview{TotalWeeks: 19}},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	profile := models.AthleteProfile{RaceDistance: models.RaceMarathon}

	doc, err := client.GeneratePlan(context.Background(), &profile, 7)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != planID {
		t.Errorf("plan ID = %s, want %s", doc.ID, planID)
	}
	if doc.Plan.Overview.TotalWeeks != 19 {
		t.Errorf("total weeks = %d, want 19", doc.Plan.Overview.TotalWeeks)
	}
}

// TestListPlansRemote verifies the athlete filter is sent as a query param
// and the summary list parses.
func TestListPlansRemote(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("athlete"); got != "3" {
				t.Errorf("athlete=%q, want 3", got)
			}
			writeTestJSON(t, w, []models.PlanSummary{
				{ID: uuid.New(), AthleteID: 3, RaceDistance: models.RaceHalf, TotalWeeks: 12},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	summaries, err := client.ListPlans(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].RaceDistance != models.RaceHalf {
		t.Errorf("race distance = %s, want half", summaries[0].RaceDistance)
	}
}

// TestApplyRaceDayRemote verifies the transform request body and response parsing.
func TestApplyRaceDayRemote(t *testing.T) {
	planID := uuid.New()
	newID := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/" + planID.String() + "/race-day": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if body["distance"] != "10k" {
				t.Errorf("distance = %q, want 10k", body["distance"])
			}
			if body["date"] != "2026-07-12" {
				t.Errorf("date = %q, want 2026-07-12", body["date"])
			}

			w.WriteHeader(http.StatusCreated)
			writeTestJSON(t, w, PlanDocument{ID: newID, Supersedes: &planID, Note: "race-day: 10k"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	date := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)

	doc, err := client.ApplyRaceDay(context.Background(), planID, models.Race10K, date)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Supersedes == nil || *doc.Supersedes != planID {
		t.Error("revision does not supersede the original")
	}
}

// TestRemoteErrorSurfaced verifies non-2xx responses become errors carrying
// the server's message.
func TestRemoteErrorSurfaced(t *testing.T) {
	planID := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/" + planID.String(): func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			writeTestJSON(t, w, map[string]string{"error": "plan not found"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "test-key")
	if _, err := client.GetPlan(context.Background(), planID); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
