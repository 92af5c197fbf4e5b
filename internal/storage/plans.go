package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/jackc/pgx/v5"
)

// ErrPlanNotFound is returned when a plan ID does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// InsertPlan stores a plan revision. The caller assigns the UUID so the
// generated response can reference it before the write lands.
func (db *DB) InsertPlan(ctx context.Context, row models.PlanRow) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO plans (id, athlete_id, supersedes, note, profile, plan)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, row.ID, row.AthleteID, row.Supersedes, row.Note, row.Profile, row.Plan)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a plan revision by ID, including the stored documents.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanRow, error) {
	var p models.PlanRow
	err := db.Pool.QueryRow(ctx, `
		SELECT id, athlete_id, supersedes, note, profile, plan, created_at
		FROM plans WHERE id = $1
	`, id).Scan(&p.ID, &p.AthleteID, &p.Supersedes, &p.Note, &p.Profile, &p.Plan, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}
	return &p, nil
}

// LatestPlan returns the most recent plan revision for an athlete, or the
// most recent overall when athleteID is zero.
func (db *DB) LatestPlan(ctx context.Context, athleteID int) (*models.PlanRow, error) {
	query := `
		SELECT id, athlete_id, supersedes, note, profile, plan, created_at
		FROM plans`
	args := []any{}
	if athleteID > 0 {
		query += ` WHERE athlete_id = $1`
		args = append(args, athleteID)
	}
	query += ` ORDER BY created_at DESC LIMIT 1`

	var p models.PlanRow
	err := db.Pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.AthleteID, &p.Supersedes, &p.Note, &p.Profile, &p.Plan, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest plan: %w", err)
	}
	return &p, nil
}

// ListPlans returns plan summaries, newest first, optionally filtered by
// athlete. The race columns are generated from the stored plan document.
func (db *DB) ListPlans(ctx context.Context, athleteID int) ([]models.PlanSummary, error) {
	query := `
		SELECT id, athlete_id, supersedes, note,
		       plan->'overview'->>'race_distance',
		       (plan->'overview'->>'race_date')::timestamptz,
		       (plan->'overview'->>'total_weeks')::int,
		       created_at
		FROM plans`
	args := []any{}
	if athleteID > 0 {
		query += ` WHERE athlete_id = $1`
		args = append(args, athleteID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []models.PlanSummary
	for rows.Next() {
		var s models.PlanSummary
		var dist string
		if err := rows.Scan(&s.ID, &s.AthleteID, &s.Supersedes, &s.Note,
			&dist, &s.RaceDate, &s.TotalWeeks, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.RaceDistance = models.RaceDistance(dist)
		result = append(result, s)
	}
	return result, rows.Err()
}

// SupersededBy returns the revision chain rooted at the given plan: the
// plans whose supersedes pointer references it, newest first.
func (db *DB) SupersededBy(ctx context.Context, id uuid.UUID) ([]models.PlanSummary, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, athlete_id, supersedes, note,
		       plan->'overview'->>'race_distance',
		       (plan->'overview'->>'race_date')::timestamptz,
		       (plan->'overview'->>'total_weeks')::int,
		       created_at
		FROM plans WHERE supersedes = $1
		ORDER BY created_at DESC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying plan revisions: %w", err)
	}
	defer rows.Close()

	var result []models.PlanSummary
	for rows.Next() {
		var s models.PlanSummary
		var dist string
		if err := rows.Scan(&s.ID, &s.AthleteID, &s.Supersedes, &s.Note,
			&dist, &s.RaceDate, &s.TotalWeeks, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan revision: %w", err)
		}
		s.RaceDistance = models.RaceDistance(dist)
		result = append(result, s)
	}
	return result, rows.Err()
}
