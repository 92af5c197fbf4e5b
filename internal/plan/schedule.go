package plan

import (
	"log/slog"
	"math"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
)

// RoleFor classifies a weekday for the athlete. It is the ordered decision
// table at the heart of weekly assembly: rules are evaluated top to bottom
// and the first match wins.
func RoleFor(day models.Weekday, p *models.AthleteProfile) models.DayRole {
	noRunning := p.RunningStatus == models.StatusCrossTrainingOnly || p.RunningStatus == models.StatusBikeOnly

	switch {
	case !p.DayAvailable(day):
		return models.RoleRest

	case day == p.LongRunDay:
		if noRunning {
			if p.HasEquipment() || p.RunningStatus == models.StatusBikeOnly {
				return models.RoleCrossTrainHard
			}
			return models.RoleRest
		}
		return models.RoleLongSession

	case p.HardDay(day) && p.CrossTrainDay(day) && p.HasEquipment():
		return models.RoleCrossTrainHard

	case p.HardDay(day):
		if noRunning {
			return models.RoleCrossTrainHard
		}
		return models.RoleHardSession

	case p.CrossTrainDay(day) && p.HasEquipment():
		return models.RoleCrossTrainEasy

	default:
		if noRunning {
			return models.RoleCrossTrainEasy
		}
		return models.RoleEasySession
	}
}

// overheadMultiplier scales a day's base distance share to account for
// warmup and cooldown attached to the workout type.
func overheadMultiplier(category string) float64 {
	switch category {
	case catalog.CategoryTempo:
		return 1.4
	case catalog.CategoryIntervals:
		return 1.25
	case catalog.CategoryHills:
		return 1.2
	case catalog.CategoryRecovery, catalog.CategoryBike, catalog.CategoryPool,
		catalog.CategoryRowing, catalog.CategoryElliptic:
		return 0.8
	default:
		return 1.0
	}
}

// runningFraction is the week-indexed share of sessions run on foot for a
// transitioning athlete.
func runningFraction(week int) float64 {
	switch {
	case week <= 2:
		return 0
	case week <= 4:
		return 0.25
	case week <= 6:
		return 0.5
	default:
		return 0.75
	}
}

// Assembler builds week schedules for one athlete. It owns the variety
// selector for the generation session.
type Assembler struct {
	profile  *models.AthleteProfile
	selector *Selector
	log      *slog.Logger
}

// NewAssembler creates an assembler for one plan-generation session.
func NewAssembler(p *models.AthleteProfile, sel *Selector, log *slog.Logger) *Assembler {
	return &Assembler{profile: p, selector: sel, log: log}
}

// BuildWeek assembles the 7-day schedule for one week: role per day from
// the decision table, distance distribution from the week target, and a
// named workout per non-rest day.
func (a *Assembler) BuildWeek(target models.WeekTarget, phase models.PhaseName, totalWeeks int) models.WeekPlan {
	week := models.WeekPlan{
		Week:     target.Week,
		Phase:    phase,
		Recovery: target.Recovery,
		Days:     make([]models.DayPlan, 0, 7),
	}

	for _, day := range models.PlanWeek {
		week.Days = append(week.Days, models.DayPlan{
			Day:  day,
			Role: RoleFor(day, a.profile),
		})
	}

	if a.profile.RunningStatus == models.StatusTransitioning {
		a.applyTransition(&week, target.Week)
	}

	a.distribute(&week, target)
	a.assignWorkouts(&week, target, totalWeeks)
	RecalcVolumes(&week)
	return week
}

// applyTransition converts running days to cross-training according to the
// week-indexed running fraction. Running is kept on quality days first; the
// remainder cross-trains.
func (a *Assembler) applyTransition(week *models.WeekPlan, weekNumber int) {
	if !a.profile.HasEquipment() {
		a.log.Warn("transitioning athlete has no cross-training equipment; keeping running schedule",
			"week", weekNumber)
		return
	}

	var running []int
	for i, d := range week.Days {
		if d.Role.Running() {
			running = append(running, i)
		}
	}
	keep := int(math.Round(runningFraction(weekNumber) * float64(len(running))))

	// Quality days hold their running slots first: long, then hard, then
	// easy, in weekday order.
	var ordered []int
	for _, role := range []models.DayRole{models.RoleLongSession, models.RoleHardSession, models.RoleEasySession} {
		for _, i := range running {
			if week.Days[i].Role == role {
				ordered = append(ordered, i)
			}
		}
	}
	for _, i := range ordered[keep:] {
		switch week.Days[i].Role {
		case models.RoleLongSession, models.RoleHardSession:
			week.Days[i].Role = models.RoleCrossTrainHard
		default:
			week.Days[i].Role = models.RoleCrossTrainEasy
		}
	}
}

// distribute assigns distances: the long session takes its target (or the
// session-count share of volume), and the remaining volume splits evenly
// across other non-rest days before overhead scaling in assignWorkouts.
func (a *Assembler) distribute(week *models.WeekPlan, target models.WeekTarget) {
	nonRest := week.NonRestDays()
	if len(nonRest) == 0 {
		return
	}

	longIdx := -1
	for _, i := range nonRest {
		if week.Days[i].Day == a.profile.LongRunDay {
			longIdx = i
			break
		}
	}

	longDist := target.LongRun
	if longDist <= 0 {
		share := 0.30
		if len(nonRest) <= 4 {
			share = 0.35
		}
		longDist = roundMiles(target.Volume * share)
	}

	remaining := target.Volume
	others := 0
	if longIdx >= 0 {
		week.Days[longIdx].Distance = longDist
		remaining -= longDist
	}
	for _, i := range nonRest {
		if i != longIdx {
			others++
		}
	}
	if others == 0 || remaining < 0 {
		return
	}

	base := remaining / float64(others)
	for _, i := range nonRest {
		if i != longIdx {
			week.Days[i].Distance = base
		}
	}
}

// assignWorkouts names each non-rest day's workout and applies the
// workout-type overhead multiplier to its base distance share.
func (a *Assembler) assignWorkouts(week *models.WeekPlan, target models.WeekTarget, totalWeeks int) {
	equipment := a.profile.Equipment
	crossIdx := 0

	nextEquipment := func() models.CrossTrainType {
		if len(equipment) == 0 {
			return models.CrossTrainBike
		}
		e := equipment[crossIdx%len(equipment)]
		crossIdx++
		return e
	}

	for i := range week.Days {
		d := &week.Days[i]
		var w catalog.Workout
		var category string

		switch d.Role {
		case models.RoleRest:
			d.Focus = "Rest"
			continue

		case models.RoleLongSession:
			category = catalog.CategoryLong
			w = a.selector.Pick(category, target.Week, totalWeeks)

		case models.RoleHardSession:
			category = a.selector.HardCategory(week.Phase)
			w = a.selector.Pick(category, target.Week, totalWeeks)
			d.Distance = roundMiles(d.Distance * overheadMultiplier(category))

		case models.RoleCrossTrainHard:
			e := nextEquipment()
			category = catalog.ForEquipment(e, a.selector.HardCategory(week.Phase))
			w = a.selector.Pick(category, target.Week, totalWeeks)

		case models.RoleCrossTrainEasy:
			e := nextEquipment()
			category = catalog.EquipmentCategory(e)
			w = a.selector.Pick(category, target.Week, totalWeeks)
			d.Distance = roundMiles(d.Distance * overheadMultiplier(category))

		case models.RoleEasySession:
			category = catalog.CategoryEasy
			if target.Recovery {
				category = catalog.CategoryRecovery
			}
			w = a.selector.Pick(category, target.Week, totalWeeks)
			d.Distance = roundMiles(d.Distance * overheadMultiplier(category))
		}

		d.Distance = roundMiles(d.Distance)
		d.Workout = w.Name
		d.Category = category
		d.Focus = w.Focus
	}
}

// RecalcVolumes recomputes a week's running and total volumes from its
// days. Running miles and cross-training equivalent miles are accumulated
// separately; TotalVolume is their sum.
func RecalcVolumes(week *models.WeekPlan) {
	var run, cross float64
	for _, d := range week.Days {
		switch {
		case d.Role.Running():
			run += d.Distance
		case d.Role.CrossTraining():
			cross += d.Distance
		}
	}
	week.RunVolume = roundMiles(run)
	week.TotalVolume = roundMiles(run + cross)
}
