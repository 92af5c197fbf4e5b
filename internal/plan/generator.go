package plan

import (
	"fmt"
	"log/slog"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
	"github.com/herrenbrad/runplans/internal/pace"
)

// Generator produces complete training plans. It is safe for concurrent
// use: all per-session state (the variety selector and its history) is
// created fresh inside Generate.
type Generator struct {
	Catalog *catalog.Catalog
	Log     *slog.Logger
}

// NewGenerator creates a generator over the given catalog.
func NewGenerator(cat *catalog.Catalog, log *slog.Logger) *Generator {
	return &Generator{Catalog: cat, Log: log}
}

// Generate validates the profile and computes the full structural plan:
// periodization targets, phases, blended paces, a schedule for every week,
// and the race-day substitution in the final week. The seed drives workout
// variety selection; identical profile and seed yield an identical plan.
func (g *Generator) Generate(p *models.AthleteProfile, seed int64) (*models.TrainingPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	totalWeeks := TotalWeeks(p.StartDate, p.RaceDate)
	if totalWeeks < 4 {
		return nil, fmt.Errorf("plan: %d weeks between start and race is too short to periodize (minimum 4)", totalWeeks)
	}

	sessions := len(p.AvailableDays)
	targets, err := WeekTargets(p.CurrentWeeklyMiles, p.CurrentLongRun, totalWeeks, p.RaceDistance, sessions, p.Experience)
	if err != nil {
		return nil, err
	}

	phases, err := Phases(totalWeeks)
	if err != nil {
		return nil, err
	}

	paces, err := g.buildPaces(p, totalWeeks)
	if err != nil {
		return nil, err
	}

	selector := NewSelector(g.Catalog, seed)
	asm := NewAssembler(p, selector, g.Log)

	weeks := make([]models.WeekPlan, 0, totalWeeks)
	for _, target := range targets {
		week := asm.BuildWeek(target, PhaseFor(phases, target.Week), totalWeeks)
		projectDates(&week, p.StartDate, target.Week)
		RecalcVolumes(&week)
		weeks = append(weeks, week)
	}

	weeks, err = ApplyRaceDay(weeks, p.RaceDistance, p.RaceDate, p.LongRunDay)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	peakVolume, peakLongRun := 0.0, 0.0
	for _, t := range targets {
		if t.Volume > peakVolume {
			peakVolume = t.Volume
		}
		if t.LongRun > peakLongRun {
			peakLongRun = t.LongRun
		}
	}

	return &models.TrainingPlan{
		Overview: models.PlanOverview{
			RaceDistance: p.RaceDistance,
			RaceDate:     p.RaceDate,
			StartDate:    p.StartDate,
			TotalWeeks:   totalWeeks,
			PeakVolume:   peakVolume,
			PeakLongRun:  peakLongRun,
		},
		Phases:  phases,
		Targets: targets,
		Weeks:   weeks,
		Paces:   paces,
	}, nil
}

// buildPaces derives goal paces from the goal time, current paces from the
// recent race if one was supplied, and the per-week blend. Without a recent
// race the plan runs in goal-only mode, which is flagged in the output so
// consumers can warn the athlete rather than silently prescribing goal pace
// from week 1.
func (g *Generator) buildPaces(p *models.AthleteProfile, totalWeeks int) (models.PlanPaces, error) {
	goal, err := pace.FromResult(p.RaceDistance, p.GoalSeconds)
	if err != nil {
		return models.PlanPaces{}, fmt.Errorf("goal paces: %w", err)
	}

	paces := models.PlanPaces{Goal: goal}
	if p.RecentRace != nil {
		current, err := pace.FromResult(p.RecentRace.Distance, p.RecentRace.Seconds)
		if err != nil {
			return models.PlanPaces{}, fmt.Errorf("current fitness paces: %w", err)
		}
		paces.Current = &current
	} else {
		paces.GoalOnly = true
		g.Log.Warn("no recent race supplied; pacing every week at goal paces",
			"race_distance", p.RaceDistance)
	}

	for week := 1; week <= totalWeeks; week++ {
		paces.Weekly = append(paces.Weekly, BlendPaces(paces.Current, goal, week, totalWeeks))
	}
	return paces, nil
}
