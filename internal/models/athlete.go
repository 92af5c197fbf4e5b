package models

import (
	"fmt"
	"strings"
	"time"
)

// RaceDistance identifies a supported goal race.
type RaceDistance string

const (
	Race5K       RaceDistance = "5k"
	Race10K      RaceDistance = "10k"
	RaceHalf     RaceDistance = "half"
	RaceMarathon RaceDistance = "marathon"
)

// SupportedRaceDistances lists all race distances the engine can plan for.
var SupportedRaceDistances = []RaceDistance{Race5K, Race10K, RaceHalf, RaceMarathon}

// ParseRaceDistance normalizes a race distance string. Accepts common
// variants ("Half Marathon", "HALF", "half-marathon").
func ParseRaceDistance(s string) (RaceDistance, bool) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, " ", ""))) {
	case "5k":
		return Race5K, true
	case "10k":
		return Race10K, true
	case "half", "halfmarathon", "half-marathon":
		return RaceHalf, true
	case "marathon", "full", "fullmarathon":
		return RaceMarathon, true
	}
	return "", false
}

// Miles returns the canonical race distance in miles.
func (d RaceDistance) Miles() float64 {
	switch d {
	case Race5K:
		return 3.1
	case Race10K:
		return 6.2
	case RaceHalf:
		return 13.1
	case RaceMarathon:
		return 26.2
	}
	return 0
}

// Meters returns the exact race distance in meters, used for pace lookups.
func (d RaceDistance) Meters() float64 {
	switch d {
	case Race5K:
		return 5000
	case Race10K:
		return 10000
	case RaceHalf:
		return 21097.5
	case RaceMarathon:
		return 42195
	}
	return 0
}

// Label returns a display name for the race distance.
func (d RaceDistance) Label() string {
	switch d {
	case Race5K:
		return "5K"
	case Race10K:
		return "10K"
	case RaceHalf:
		return "Half Marathon"
	case RaceMarathon:
		return "Marathon"
	}
	return string(d)
}

// ExperienceLevel scales peak training load.
type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

// RunningStatus describes whether the athlete is currently able to run.
type RunningStatus string

const (
	StatusActive            RunningStatus = "active"
	StatusCrossTrainingOnly RunningStatus = "cross_training_only"
	StatusTransitioning     RunningStatus = "transitioning"
	StatusBikeOnly          RunningStatus = "bike_only"
)

// CrossTrainType tags a piece of cross-training equipment.
type CrossTrainType string

const (
	CrossTrainBike       CrossTrainType = "bike"
	CrossTrainPool       CrossTrainType = "pool"
	CrossTrainRowing     CrossTrainType = "rowing"
	CrossTrainElliptical CrossTrainType = "elliptical"
)

// Weekday is a schedule weekday name. The plan week runs Monday through
// Sunday regardless of the athlete's start date.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// PlanWeek is the fixed Monday-first ordering used when assembling a week.
var PlanWeek = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday normalizes a weekday name.
func ParseWeekday(s string) (Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon":
		return Monday, true
	case "tuesday", "tue", "tues":
		return Tuesday, true
	case "wednesday", "wed":
		return Wednesday, true
	case "thursday", "thu", "thurs":
		return Thursday, true
	case "friday", "fri":
		return Friday, true
	case "saturday", "sat":
		return Saturday, true
	case "sunday", "sun":
		return Sunday, true
	}
	return "", false
}

// Index returns the Monday-based position of the weekday (monday = 0).
func (w Weekday) Index() int {
	for i, d := range PlanWeek {
		if d == w {
			return i
		}
	}
	return -1
}

// Label returns the capitalized display name.
func (w Weekday) Label() string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(string(w[0])) + string(w[1:])
}

// FromTimeWeekday converts a time.Weekday to a schedule Weekday.
func FromTimeWeekday(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// RaceResult is a recent race used to estimate current fitness.
type RaceResult struct {
	Distance RaceDistance `json:"distance" yaml:"distance"`
	Seconds  int          `json:"seconds" yaml:"seconds"`
}

// AthleteProfile is the full input to plan generation. All derived plan
// entities are computed fresh from one profile per request.
type AthleteProfile struct {
	Name               string           `json:"name,omitempty" yaml:"name"`
	RaceDistance       RaceDistance     `json:"race_distance" yaml:"race_distance"`
	RaceDate           time.Time        `json:"race_date" yaml:"race_date"`
	StartDate          time.Time        `json:"start_date" yaml:"start_date"`
	CurrentWeeklyMiles float64          `json:"current_weekly_miles" yaml:"current_weekly_miles"`
	CurrentLongRun     float64          `json:"current_long_run" yaml:"current_long_run"`
	Experience         ExperienceLevel  `json:"experience" yaml:"experience"`
	AvailableDays      []Weekday        `json:"available_days" yaml:"available_days"`
	HardDays           []Weekday        `json:"hard_days" yaml:"hard_days"`
	LongRunDay         Weekday          `json:"long_run_day" yaml:"long_run_day"`
	CrossTrainDays     []Weekday        `json:"cross_train_days,omitempty" yaml:"cross_train_days"`
	Equipment          []CrossTrainType `json:"equipment,omitempty" yaml:"equipment"`
	RunningStatus      RunningStatus    `json:"running_status" yaml:"running_status"`

	// GoalSeconds is the goal finish time for the target race. Required:
	// goal paces are derived from it.
	GoalSeconds int `json:"goal_seconds" yaml:"goal_seconds"`

	// RecentRace estimates current fitness. When absent the plan runs in
	// goal-only pace mode and is flagged accordingly.
	RecentRace *RaceResult `json:"recent_race,omitempty" yaml:"recent_race"`
}

// HasEquipment reports whether any cross-training equipment is declared.
func (p *AthleteProfile) HasEquipment() bool {
	return len(p.Equipment) > 0
}

// DayAvailable reports whether the athlete trains on the given day.
func (p *AthleteProfile) DayAvailable(d Weekday) bool {
	return containsDay(p.AvailableDays, d)
}

// HardDay reports whether the day is a declared quality-session day.
func (p *AthleteProfile) HardDay(d Weekday) bool {
	return containsDay(p.HardDays, d)
}

// CrossTrainDay reports whether the day is a preferred cross-training day.
func (p *AthleteProfile) CrossTrainDay(d Weekday) bool {
	return containsDay(p.CrossTrainDays, d)
}

func containsDay(days []Weekday, d Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

// ValidationError reports invalid or missing profile fields. It is returned
// before any plan computation runs.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid athlete profile: %s", strings.Join(e.Fields, "; "))
}

// Validate checks required fields and the day-subset invariants:
// hard days, the long-run day, and cross-training days must all be drawn
// from the available days.
func (p *AthleteProfile) Validate() error {
	var fields []string

	if p.RaceDistance == "" {
		fields = append(fields, "race_distance: required")
	} else if p.RaceDistance.Miles() == 0 {
		fields = append(fields, fmt.Sprintf("race_distance: unsupported %q", p.RaceDistance))
	}
	if p.StartDate.IsZero() {
		fields = append(fields, "start_date: required")
	}
	if p.RaceDate.IsZero() {
		fields = append(fields, "race_date: required")
	} else if !p.StartDate.IsZero() && !p.RaceDate.After(p.StartDate) {
		fields = append(fields, "race_date: must be after start_date")
	}
	if p.CurrentWeeklyMiles <= 0 {
		fields = append(fields, "current_weekly_miles: required")
	}
	if p.CurrentLongRun <= 0 {
		fields = append(fields, "current_long_run: required")
	}
	switch p.Experience {
	case Beginner, Intermediate, Advanced:
	case "":
		fields = append(fields, "experience: required")
	default:
		fields = append(fields, fmt.Sprintf("experience: unsupported %q", p.Experience))
	}
	switch p.RunningStatus {
	case StatusActive, StatusCrossTrainingOnly, StatusTransitioning, StatusBikeOnly:
	case "":
		fields = append(fields, "running_status: required")
	default:
		fields = append(fields, fmt.Sprintf("running_status: unsupported %q", p.RunningStatus))
	}
	if len(p.AvailableDays) < 3 {
		fields = append(fields, "available_days: at least 3 training days required")
	}
	if p.GoalSeconds <= 0 {
		fields = append(fields, "goal_seconds: required")
	}

	if p.LongRunDay == "" {
		fields = append(fields, "long_run_day: required")
	} else if !p.DayAvailable(p.LongRunDay) {
		fields = append(fields, fmt.Sprintf("long_run_day: %s is not an available day", p.LongRunDay))
	}
	for _, d := range p.HardDays {
		if !p.DayAvailable(d) {
			fields = append(fields, fmt.Sprintf("hard_days: %s is not an available day", d))
		}
	}
	for _, d := range p.CrossTrainDays {
		if !p.DayAvailable(d) {
			fields = append(fields, fmt.Sprintf("cross_train_days: %s is not an available day", d))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
