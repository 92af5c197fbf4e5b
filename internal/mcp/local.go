package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/herrenbrad/runplans/internal/plan"
	"github.com/herrenbrad/runplans/internal/storage"
)

// Local implements DataSource against the plan engine and database
// directly. Used when the MCP server runs on the same host as the data.
type Local struct {
	db  *storage.DB
	gen *plan.Generator
	cat *catalog.Catalog
	log *slog.Logger
}

// NewLocal creates a Local data source.
func NewLocal(db *storage.DB, cat *catalog.Catalog, log *slog.Logger) *Local {
	return &Local{db: db, gen: plan.NewGenerator(cat, log), cat: cat, log: log}
}

func (l *Local) GeneratePlan(ctx context.Context, profile *models.AthleteProfile, seed int64) (*PlanDocument, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, err := l.gen.Generate(profile, seed)
	if err != nil {
		return nil, err
	}

	name := profile.Name
	if name == "" {
		name = "default"
	}
	athleteID, err := l.db.GetOrCreateAthlete(ctx, name)
	if err != nil {
		return nil, err
	}

	doc := &PlanDocument{ID: uuid.New(), AthleteID: athleteID, Plan: p}
	if err := l.insert(ctx, doc, profile); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *Local) GetPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error) {
	row, err := l.db.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return documentFromRow(row)
}

func (l *Local) LatestPlan(ctx context.Context, athleteID int) (*PlanDocument, error) {
	row, err := l.db.LatestPlan(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return documentFromRow(row)
}

func (l *Local) ListPlans(ctx context.Context, athleteID int) ([]models.PlanSummary, error) {
	return l.db.ListPlans(ctx, athleteID)
}

func (l *Local) ApplyRaceDay(ctx context.Context, id uuid.UUID, distance models.RaceDistance, date time.Time) (*PlanDocument, error) {
	row, profile, doc, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}

	weeks, err := plan.ApplyRaceDay(doc.Weeks, distance, date, profile.LongRunDay)
	if err != nil {
		return nil, err
	}
	doc.Weeks = weeks

	return l.storeRevision(ctx, row, profile, doc, "race-day: "+string(distance))
}

func (l *Local) ApplyInjuryRecovery(ctx context.Context, id uuid.UUID, params InjuryParams) (*PlanDocument, error) {
	row, profile, doc, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment := params.Equipment
	if len(equipment) == 0 {
		equipment = profile.Equipment
	}

	weeks, err := plan.ApplyInjuryRecovery(doc.Weeks, params.StartWeek, params.DurationWeeks, params.ReduceDays, equipment, l.cat)
	if err != nil {
		return nil, err
	}
	doc.Weeks = weeks

	return l.storeRevision(ctx, row, profile, doc, "injury-recovery")
}

func (l *Local) RevertPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error) {
	row, err := l.db.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Supersedes == nil {
		return nil, errors.New("plan has no prior revision to revert to")
	}
	orig, err := l.db.GetPlan(ctx, *row.Supersedes)
	if err != nil {
		return nil, err
	}
	return documentFromRow(orig)
}

func (l *Local) load(ctx context.Context, id uuid.UUID) (*models.PlanRow, *models.AthleteProfile, *models.TrainingPlan, error) {
	row, err := l.db.GetPlan(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	var profile models.AthleteProfile
	if err := json.Unmarshal(row.Profile, &profile); err != nil {
		return nil, nil, nil, fmt.Errorf("corrupt stored profile: %w", err)
	}
	var doc models.TrainingPlan
	if err := json.Unmarshal(row.Plan, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("corrupt stored plan: %w", err)
	}
	return row, &profile, &doc, nil
}

func (l *Local) storeRevision(ctx context.Context, orig *models.PlanRow, profile *models.AthleteProfile, p *models.TrainingPlan, note string) (*PlanDocument, error) {
	doc := &PlanDocument{
		ID: uuid.New(), AthleteID: orig.AthleteID, Supersedes: &orig.ID, Note: note, Plan: p,
	}
	if err := l.insert(ctx, doc, profile); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *Local) insert(ctx context.Context, doc *PlanDocument, profile *models.AthleteProfile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	planJSON, err := json.Marshal(doc.Plan)
	if err != nil {
		return err
	}
	return l.db.InsertPlan(ctx, models.PlanRow{
		ID: doc.ID, AthleteID: doc.AthleteID, Supersedes: doc.Supersedes, Note: doc.Note,
		Profile: profileJSON, Plan: planJSON,
	})
}

func documentFromRow(row *models.PlanRow) (*PlanDocument, error) {
	var doc models.TrainingPlan
	if err := json.Unmarshal(row.Plan, &doc); err != nil {
		return nil, fmt.Errorf("corrupt stored plan: %w", err)
	}
	return &PlanDocument{
		ID: row.ID, AthleteID: row.AthleteID, Supersedes: row.Supersedes, Note: row.Note, Plan: &doc,
	}, nil
}
