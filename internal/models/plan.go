package models

import "time"

// PhaseName identifies a periodization block.
type PhaseName string

const (
	PhaseBase  PhaseName = "base"
	PhaseBuild PhaseName = "build"
	PhasePeak  PhaseName = "peak"
	PhaseTaper PhaseName = "taper"
)

// Phase is a contiguous block of plan weeks with one training emphasis.
// Phases never overlap and together cover weeks 1..totalWeeks exactly.
type Phase struct {
	Name      PhaseName `json:"name"`
	StartWeek int       `json:"start_week"`
	EndWeek   int       `json:"end_week"`
}

// WeekTarget is the periodization output for one week: how much to run in
// total and how far the long session goes. Week 1 volume always equals the
// athlete's current weekly volume.
type WeekTarget struct {
	Week     int     `json:"week"`
	Volume   float64 `json:"volume"`
	LongRun  float64 `json:"long_run"`
	Recovery bool    `json:"recovery"`
}

// DayRole classifies what a calendar day is for.
type DayRole string

const (
	RoleRest           DayRole = "rest"
	RoleLongSession    DayRole = "long"
	RoleHardSession    DayRole = "hard"
	RoleCrossTrainHard DayRole = "cross_hard"
	RoleCrossTrainEasy DayRole = "cross_easy"
	RoleEasySession    DayRole = "easy"
	RoleRace           DayRole = "race"
)

// Running reports whether the role is an on-foot running session.
func (r DayRole) Running() bool {
	switch r {
	case RoleLongSession, RoleHardSession, RoleEasySession, RoleRace:
		return true
	}
	return false
}

// CrossTraining reports whether the role is an equipment session.
func (r DayRole) CrossTraining() bool {
	return r == RoleCrossTrainHard || r == RoleCrossTrainEasy
}

// DayPlan is one calendar day of a training week. Workout is an opaque
// reference into the workout catalog; Category is the catalog category it
// was drawn from (used by the injury transformer's priority ranking).
type DayPlan struct {
	Day      Weekday   `json:"day"`
	Date     time.Time `json:"date"`
	Role     DayRole   `json:"role"`
	Distance float64   `json:"distance"`
	Workout  string    `json:"workout,omitempty"`
	Category string    `json:"category,omitempty"`
	Focus    string    `json:"focus,omitempty"`

	// BeforeStart marks week-1 days that fall before the plan start date.
	BeforeStart bool `json:"before_start,omitempty"`
}

// WeekPlan is a fully assembled training week: exactly 7 days in calendar
// order. RunVolume counts running miles only; TotalVolume additionally
// counts cross-training effort-equivalent miles. The two are kept separate
// so consumers choose which accounting they want.
type WeekPlan struct {
	Week        int       `json:"week"`
	Phase       PhaseName `json:"phase"`
	Recovery    bool      `json:"recovery"`
	RunVolume   float64   `json:"run_volume"`
	TotalVolume float64   `json:"total_volume"`
	Days        []DayPlan `json:"days"`
}

// NonRestDays returns indexes of days that are not rest days.
func (w *WeekPlan) NonRestDays() []int {
	var idx []int
	for i, d := range w.Days {
		if d.Role != RoleRest {
			idx = append(idx, i)
		}
	}
	return idx
}

// PaceSet holds per-zone training paces in seconds per mile, plus optional
// track-interval split times in seconds.
type PaceSet struct {
	Easy     float64     `json:"easy"`
	Tempo    float64     `json:"tempo"`
	Interval float64     `json:"interval"`
	Long     float64     `json:"long"`
	Track    *TrackTimes `json:"track,omitempty"`
}

// TrackTimes are target split times for common track repeat distances.
type TrackTimes struct {
	Q400  float64 `json:"q400"`
	Q800  float64 `json:"q800"`
	Q1200 float64 `json:"q1200"`
}

// WeekPaces is the blended pace prescription for one week. Ratio is the
// progression fraction from current fitness (0) to goal fitness (1).
type WeekPaces struct {
	Week  int     `json:"week"`
	Ratio float64 `json:"ratio"`
	Paces PaceSet `json:"paces"`
}

// PlanPaces carries the pace picture for the whole plan. GoalOnly is set
// when no current-fitness data was supplied and every week prescribes goal
// paces; downstream consumers must surface that to the athlete.
type PlanPaces struct {
	Current  *PaceSet    `json:"current,omitempty"`
	Goal     PaceSet     `json:"goal"`
	GoalOnly bool        `json:"goal_only"`
	Weekly   []WeekPaces `json:"weekly"`
}

// PlanOverview summarizes the plan shape for display layers.
type PlanOverview struct {
	RaceDistance RaceDistance `json:"race_distance"`
	RaceDate     time.Time    `json:"race_date"`
	StartDate    time.Time    `json:"start_date"`
	TotalWeeks   int          `json:"total_weeks"`
	PeakVolume   float64      `json:"peak_volume"`
	PeakLongRun  float64      `json:"peak_long_run"`
}

// TrainingPlan is the complete structural plan returned to rendering and
// narration layers. It is JSON-serializable as-is.
type TrainingPlan struct {
	Overview PlanOverview `json:"overview"`
	Phases   []Phase      `json:"phases"`
	Targets  []WeekTarget `json:"targets"`
	Weeks    []WeekPlan   `json:"weeks"`
	Paces    PlanPaces    `json:"paces"`
}

// PhaseFor returns the phase name covering the given week.
func (p *TrainingPlan) PhaseFor(week int) PhaseName {
	for _, ph := range p.Phases {
		if week >= ph.StartWeek && week <= ph.EndWeek {
			return ph.Name
		}
	}
	return PhaseBase
}

// CloneWeeks deep-copies a week list. Transformers operate on a clone so
// the pre-modification plan is retained for exact reversal.
func CloneWeeks(weeks []WeekPlan) []WeekPlan {
	out := make([]WeekPlan, len(weeks))
	for i, w := range weeks {
		out[i] = w
		out[i].Days = make([]DayPlan, len(w.Days))
		copy(out[i].Days, w.Days)
	}
	return out
}
