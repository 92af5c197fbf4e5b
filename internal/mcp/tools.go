package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/herrenbrad/runplans/internal/pace"
	"github.com/mark3labs/mcp-go/mcp"
)

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseRaceTime accepts plain seconds, M:SS, or H:MM:SS.
func parseRaceTime(s string) (int, error) {
	if s == "" {
		return 0, errors.New("time is required")
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

func parseEquipment(s string) ([]models.CrossTrainType, error) {
	if s == "" {
		return nil, nil
	}
	var out []models.CrossTrainType
	for _, part := range strings.Split(s, ",") {
		switch e := models.CrossTrainType(strings.TrimSpace(strings.ToLower(part))); e {
		case models.CrossTrainBike, models.CrossTrainPool, models.CrossTrainRowing, models.CrossTrainElliptical:
			out = append(out, e)
		default:
			return nil, errors.New("unknown equipment type: " + part)
		}
	}
	return out, nil
}

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a complete periodized training plan for a goal race. Takes the athlete profile as a JSON object and returns the full plan: weekly targets, phases, day-by-day schedule with workouts, and pace prescriptions."),
	mcp.WithString("profile", mcp.Required(), mcp.Description(`Athlete profile as JSON, e.g. {"name":"alice","race_distance":"marathon","race_date":"2026-07-12T00:00:00Z","start_date":"2026-03-02T00:00:00Z","current_weekly_miles":25,"current_long_run":6,"experience":"intermediate","available_days":["monday","tuesday","thursday","saturday","sunday"],"hard_days":["tuesday","thursday"],"long_run_day":"sunday","running_status":"active","goal_seconds":14400}`)),
	mcp.WithNumber("seed", mcp.Description("Workout variety seed. Identical profile and seed reproduce the same plan. Defaults to a time-based seed.")),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Retrieve a stored training plan revision by ID."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan UUID")),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List stored plan revisions, newest first, with race distance, race date, and revision chain links."),
	mcp.WithNumber("athlete", mcp.Description("Filter by athlete ID. Omit for all athletes.")),
)

var toolGetPaceZones = mcp.NewTool("get_pace_zones",
	mcp.WithDescription("Estimate fitness from a race result and derive training pace zones (easy, tempo, interval, long, track splits) plus equivalent race time predictions."),
	mcp.WithString("distance", mcp.Required(), mcp.Description("Race distance: 5k, 10k, half, or marathon")),
	mcp.WithString("time", mcp.Required(), mcp.Description("Race time as seconds, M:SS, or H:MM:SS (e.g. '43:30' or '3:45:00')")),
)

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List workout descriptors from the catalog. Without a category, returns all categories and their entries."),
	mcp.WithString("category", mcp.Description("Catalog category (e.g. tempo, intervals, hills, long, recovery, bike, tempo_pool)")),
)

var toolApplyRaceDay = mcp.NewTool("apply_race_day",
	mcp.WithDescription("Substitute a race into the final week of a stored plan and store the result as a new revision superseding the original."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan UUID")),
	mcp.WithString("distance", mcp.Required(), mcp.Description("Race distance: 5k, 10k, half, or marathon")),
	mcp.WithString("date", mcp.Required(), mcp.Description("Race date (YYYY-MM-DD)")),
)

var toolApplyInjuryRecovery = mcp.NewTool("apply_injury_recovery",
	mcp.WithDescription("Rewrite a span of weeks for an injured athlete: running sessions become cross-training split fairly across equipment, followed by a return-to-running week. Stores the result as a new revision; the original is retained for revert."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan UUID")),
	mcp.WithNumber("start_week", mcp.Required(), mcp.Description("First affected week (1-based)")),
	mcp.WithNumber("duration_weeks", mcp.Required(), mcp.Description("Number of weeks to rewrite")),
	mcp.WithNumber("reduce_days", mcp.Description("Training days to drop per affected week. Defaults to 0.")),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment: bike, pool, rowing, elliptical. Defaults to the profile's equipment.")),
)

var toolRevertPlan = mcp.NewTool("revert_plan",
	mcp.WithDescription("Return the plan revision that a transformed plan superseded, restoring the pre-transform schedule exactly."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan UUID of the transformed revision")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileJSON, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}

	var profile models.AthleteProfile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return mcp.NewToolResultError("invalid profile JSON: " + err.Error()), nil
	}

	seed := int64(req.GetInt("seed", 0))
	doc, err := h.ds.GeneratePlan(ctx, &profile, seed)
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("plan generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := planIDParam(req)
	if errResult != nil {
		return errResult, nil
	}

	doc, err := h.ds.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("lookup failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	athleteID := req.GetInt("athlete", 0)

	summaries, err := h.ds.ListPlans(ctx, athleteID)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if summaries == nil {
		summaries = []models.PlanSummary{}
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPaceZones(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	distStr, err := req.RequireString("distance")
	if err != nil {
		return mcp.NewToolResultError("distance parameter is required"), nil
	}
	distance, ok := models.ParseRaceDistance(distStr)
	if !ok {
		return mcp.NewToolResultError("unsupported race distance: " + distStr), nil
	}

	timeStr, err := req.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError("time parameter is required"), nil
	}
	seconds, err := parseRaceTime(timeStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	vdot, err := pace.FromRace(distance, seconds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	zones, err := pace.Zones(vdot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	equivalents := make(map[string]string, len(models.SupportedRaceDistances))
	for _, d := range models.SupportedRaceDistances {
		if t, err := pace.PredictTime(vdot, d); err == nil {
			equivalents[string(d)] = pace.FormatDuration(t)
		}
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"vdot":    vdot,
		"fitness": pace.FitnessLabel(vdot),
		"paces":   zones,
		"formatted": map[string]string{
			"easy":     pace.FormatPace(zones.Easy),
			"tempo":    pace.FormatPace(zones.Tempo),
			"interval": pace.FormatPace(zones.Interval),
			"long":     pace.FormatPace(zones.Long),
		},
		"equivalents": equivalents,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")

	var payload any
	if category == "" {
		all := make(map[string][]catalog.Workout)
		for _, cat := range h.cat.Categories() {
			all[cat] = h.cat.Workouts(cat)
		}
		payload = all
	} else {
		workouts := h.cat.Workouts(category)
		if len(workouts) == 0 {
			return mcp.NewToolResultError("unknown category: " + category), nil
		}
		payload = workouts
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) applyRaceDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := planIDParam(req)
	if errResult != nil {
		return errResult, nil
	}

	distStr, err := req.RequireString("distance")
	if err != nil {
		return mcp.NewToolResultError("distance parameter is required"), nil
	}
	distance, ok := models.ParseRaceDistance(distStr)
	if !ok {
		return mcp.NewToolResultError("unsupported race distance: " + distStr), nil
	}

	dateStr, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError("date parameter is required"), nil
	}
	date, err := parseFlexTime(dateStr)
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + dateStr), nil
	}

	doc, err := h.ds.ApplyRaceDay(ctx, id, distance, date)
	if err != nil {
		h.log.Error("mcp apply_race_day", "error", err)
		return mcp.NewToolResultError("race day failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) applyInjuryRecovery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := planIDParam(req)
	if errResult != nil {
		return errResult, nil
	}

	startWeek, err := req.RequireInt("start_week")
	if err != nil {
		return mcp.NewToolResultError("start_week parameter is required"), nil
	}
	duration, err := req.RequireInt("duration_weeks")
	if err != nil {
		return mcp.NewToolResultError("duration_weeks parameter is required"), nil
	}

	equipment, err := parseEquipment(req.GetString("equipment", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := h.ds.ApplyInjuryRecovery(ctx, id, InjuryParams{
		StartWeek:     startWeek,
		DurationWeeks: duration,
		ReduceDays:    req.GetInt("reduce_days", 0),
		Equipment:     equipment,
	})
	if err != nil {
		h.log.Error("mcp apply_injury_recovery", "error", err)
		return mcp.NewToolResultError("injury recovery failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) revertPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := planIDParam(req)
	if errResult != nil {
		return errResult, nil
	}

	doc, err := h.ds.RevertPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp revert_plan", "error", err)
		return mcp.NewToolResultError("revert failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(doc)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func planIDParam(req mcp.CallToolRequest) (uuid.UUID, *mcp.CallToolResult) {
	idStr, err := req.RequireString("plan_id")
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("plan_id parameter is required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, mcp.NewToolResultError("invalid plan ID: " + idStr)
	}
	return id, nil
}
