package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/herrenbrad/runplans/internal/models"
)

// PlanDocument is a stored plan revision as MCP tools see it: the identity
// and revision chain fields plus the full plan.
type PlanDocument struct {
	ID         uuid.UUID            `json:"id"`
	AthleteID  int                  `json:"athlete_id"`
	Supersedes *uuid.UUID           `json:"supersedes,omitempty"`
	Note       string               `json:"note,omitempty"`
	Plan       *models.TrainingPlan `json:"plan"`
}

// InjuryParams are the inputs to the injury-recovery transform.
type InjuryParams struct {
	StartWeek     int
	DurationWeeks int
	ReduceDays    int
	Equipment     []models.CrossTrainType
}

// DataSource abstracts plan operations for MCP tools. Local (generator +
// database) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	GeneratePlan(ctx context.Context, profile *models.AthleteProfile, seed int64) (*PlanDocument, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error)
	LatestPlan(ctx context.Context, athleteID int) (*PlanDocument, error)
	ListPlans(ctx context.Context, athleteID int) ([]models.PlanSummary, error)
	ApplyRaceDay(ctx context.Context, id uuid.UUID, distance models.RaceDistance, date time.Time) (*PlanDocument, error)
	ApplyInjuryRecovery(ctx context.Context, id uuid.UUID, params InjuryParams) (*PlanDocument, error)
	RevertPlan(ctx context.Context, id uuid.UUID) (*PlanDocument, error)
}

// Compile-time checks: both backends satisfy DataSource.
var (
	_ DataSource = (*Local)(nil)
	_ DataSource = (*HTTPClient)(nil)
)
