package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/herrenbrad/runplans/internal/pace"
	"github.com/herrenbrad/runplans/internal/plan"
	"github.com/herrenbrad/runplans/internal/storage"
)

type generateRequest struct {
	models.AthleteProfile
	Seed int64 `json:"seed,omitempty"`
}

type planResponse struct {
	ID         uuid.UUID            `json:"id"`
	AthleteID  int                  `json:"athlete_id"`
	Supersedes *uuid.UUID           `json:"supersedes,omitempty"`
	Note       string               `json:"note,omitempty"`
	Plan       *models.TrainingPlan `json:"plan"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, err := s.gen.Generate(&req.AthleteProfile, seed)
	if err != nil {
		s.writePlanError(w, err)
		return
	}

	name := req.Name
	if name == "" {
		name = "default"
	}
	athleteID, err := s.store.GetOrCreateAthlete(r.Context(), name)
	if err != nil {
		s.log.Error("athlete upsert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	row, err := planRow(uuid.New(), athleteID, nil, "", &req.AthleteProfile, p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := s.store.InsertPlan(r.Context(), row); err != nil {
		s.log.Error("plan insert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, planResponse{ID: row.ID, AthleteID: athleteID, Plan: p})
}

func (s *Server) handleListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := s.store.ListAthletes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if athletes == nil {
		athletes = []models.AthleteRow{}
	}
	writeJSON(w, http.StatusOK, athletes)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	row, _, doc, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, planResponse{
		ID: row.ID, AthleteID: row.AthleteID, Supersedes: row.Supersedes, Note: row.Note, Plan: doc,
	})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	athleteID := 0
	if v := r.URL.Query().Get("athlete"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid athlete ID"})
			return
		}
		athleteID = id
	}

	summaries, err := s.store.ListPlans(r.Context(), athleteID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if summaries == nil {
		summaries = []models.PlanSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// handleRevisions lists the revisions that supersede the given plan,
// newest first. An original with no transforms applied returns an empty
// list, not an error.
func (s *Server) handleRevisions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return
	}
	if _, err := s.store.GetPlan(r.Context(), id); err != nil {
		s.writePlanError(w, err)
		return
	}

	summaries, err := s.store.SupersededBy(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if summaries == nil {
		summaries = []models.PlanSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

type raceDayRequest struct {
	Distance string `json:"distance"`
	Date     string `json:"date"`
}

func (s *Server) handleRaceDay(w http.ResponseWriter, r *http.Request) {
	row, profile, doc, ok := s.loadPlan(w, r)
	if !ok {
		return
	}

	var req raceDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	distance, ok2 := models.ParseRaceDistance(req.Distance)
	if !ok2 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported race distance: " + req.Distance})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + req.Date})
		return
	}

	weeks, err := plan.ApplyRaceDay(doc.Weeks, distance, date, profile.LongRunDay)
	if err != nil {
		s.writePlanError(w, err)
		return
	}
	doc.Weeks = weeks

	s.storeRevision(w, r, row, profile, doc, "race-day: "+string(distance))
}

type injuryRequest struct {
	StartWeek     int                     `json:"start_week"`
	DurationWeeks int                     `json:"duration_weeks"`
	ReduceDays    int                     `json:"reduce_days"`
	Equipment     []models.CrossTrainType `json:"equipment,omitempty"`
}

func (s *Server) handleInjuryRecovery(w http.ResponseWriter, r *http.Request) {
	row, profile, doc, ok := s.loadPlan(w, r)
	if !ok {
		return
	}

	var req injuryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	equipment := req.Equipment
	if len(equipment) == 0 {
		equipment = profile.Equipment
	}

	weeks, err := plan.ApplyInjuryRecovery(doc.Weeks, req.StartWeek, req.DurationWeeks, req.ReduceDays, equipment, s.catalog)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	doc.Weeks = weeks

	s.storeRevision(w, r, row, profile, doc, "injury-recovery")
}

func (s *Server) handleRevert(w http.ResponseWriter, r *http.Request) {
	row, _, _, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	if row.Supersedes == nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "plan has no prior revision to revert to"})
		return
	}

	orig, err := s.store.GetPlan(r.Context(), *row.Supersedes)
	if err != nil {
		s.writePlanError(w, err)
		return
	}
	var doc models.TrainingPlan
	if err := json.Unmarshal(orig.Plan, &doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "corrupt stored plan: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, planResponse{
		ID: orig.ID, AthleteID: orig.AthleteID, Supersedes: orig.Supersedes, Note: orig.Note, Plan: &doc,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	out := make(map[string][]catalog.Workout)
	for _, cat := range s.catalog.Categories() {
		out[cat] = s.catalog.Workouts(cat)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCatalogCategory(w http.ResponseWriter, r *http.Request) {
	cat := chi.URLParam(r, "category")
	workouts := s.catalog.Workouts(cat)
	if len(workouts) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown category: " + cat})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

type pacesResponse struct {
	VDOT        float64           `json:"vdot"`
	Fitness     string            `json:"fitness"`
	Paces       models.PaceSet    `json:"paces"`
	Formatted   map[string]string `json:"formatted"`
	Equivalents map[string]string `json:"equivalents"`
}

func (s *Server) handlePaces(w http.ResponseWriter, r *http.Request) {
	distance, ok := models.ParseRaceDistance(r.URL.Query().Get("distance"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "distance parameter required (5k, 10k, half, marathon)"})
		return
	}
	seconds, err := parseRaceTime(r.URL.Query().Get("time"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	vdot, err := pace.FromRace(distance, seconds)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	zones, err := pace.Zones(vdot)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	equivalents := make(map[string]string, len(models.SupportedRaceDistances))
	for _, d := range models.SupportedRaceDistances {
		t, err := pace.PredictTime(vdot, d)
		if err != nil {
			continue
		}
		equivalents[string(d)] = pace.FormatDuration(t)
	}

	writeJSON(w, http.StatusOK, pacesResponse{
		VDOT:    vdot,
		Fitness: pace.FitnessLabel(vdot),
		Paces:   zones,
		Formatted: map[string]string{
			"easy":     pace.FormatPace(zones.Easy),
			"tempo":    pace.FormatPace(zones.Tempo),
			"interval": pace.FormatPace(zones.Interval),
			"long":     pace.FormatPace(zones.Long),
		},
		Equivalents: equivalents,
	})
}

// loadPlan fetches the plan row from the URL ID and unmarshals its stored
// documents. On failure it writes the error response and returns ok=false.
func (s *Server) loadPlan(w http.ResponseWriter, r *http.Request) (*models.PlanRow, *models.AthleteProfile, *models.TrainingPlan, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return nil, nil, nil, false
	}

	row, err := s.store.GetPlan(r.Context(), id)
	if err != nil {
		s.writePlanError(w, err)
		return nil, nil, nil, false
	}

	var profile models.AthleteProfile
	if err := json.Unmarshal(row.Profile, &profile); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "corrupt stored profile: " + err.Error()})
		return nil, nil, nil, false
	}
	var doc models.TrainingPlan
	if err := json.Unmarshal(row.Plan, &doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "corrupt stored plan: " + err.Error()})
		return nil, nil, nil, false
	}
	return row, &profile, &doc, true
}

// storeRevision persists a transformed plan as a new revision superseding
// the original and writes it back to the client.
func (s *Server) storeRevision(w http.ResponseWriter, r *http.Request, orig *models.PlanRow, profile *models.AthleteProfile, doc *models.TrainingPlan, note string) {
	row, err := planRow(uuid.New(), orig.AthleteID, &orig.ID, note, profile, doc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := s.store.InsertPlan(r.Context(), row); err != nil {
		s.log.Error("plan revision insert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, planResponse{
		ID: row.ID, AthleteID: row.AthleteID, Supersedes: row.Supersedes, Note: note, Plan: doc,
	})
}

func planRow(id uuid.UUID, athleteID int, supersedes *uuid.UUID, note string, profile *models.AthleteProfile, doc *models.TrainingPlan) (models.PlanRow, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return models.PlanRow{}, err
	}
	planJSON, err := json.Marshal(doc)
	if err != nil {
		return models.PlanRow{}, err
	}
	return models.PlanRow{
		ID: id, AthleteID: athleteID, Supersedes: supersedes, Note: note,
		Profile: profileJSON, Plan: planJSON,
	}, nil
}

// writePlanError maps engine and storage errors onto HTTP statuses.
func (s *Server) writePlanError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid profile", "fields": verr.Fields})
	case errors.Is(err, plan.ErrNoRaceSlot):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrPlanNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
	default:
		s.log.Error("plan error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseRaceTime accepts plain seconds, M:SS, or H:MM:SS.
func parseRaceTime(s string) (int, error) {
	if s == "" {
		return 0, errors.New("time parameter required")
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, errors.New("invalid time: " + s)
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, errors.New("invalid time: " + s)
		}
		total = total*60 + n
	}
	return total, nil
}
