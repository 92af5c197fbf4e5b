package models

import (
	"time"

	"github.com/google/uuid"
)

// AthleteRow is a row of the athletes table.
type AthleteRow struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanRow is a stored plan revision. Profile and Plan hold the request
// profile and generated plan as JSONB documents. Supersedes links a revision
// to the plan it replaced: race-day and injury transforms store a new row
// pointing at the original, so revert is a lookup rather than a recompute.
type PlanRow struct {
	ID         uuid.UUID  `json:"id"`
	AthleteID  int        `json:"athlete_id"`
	Supersedes *uuid.UUID `json:"supersedes,omitempty"`
	Note       string     `json:"note,omitempty"`
	Profile    []byte     `json:"-"`
	Plan       []byte     `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// PlanSummary is the listing projection of a stored plan.
type PlanSummary struct {
	ID           uuid.UUID    `json:"id"`
	AthleteID    int          `json:"athlete_id"`
	RaceDistance RaceDistance `json:"race_distance"`
	RaceDate     time.Time    `json:"race_date"`
	TotalWeeks   int          `json:"total_weeks"`
	Supersedes   *uuid.UUID   `json:"supersedes,omitempty"`
	Note         string       `json:"note,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
