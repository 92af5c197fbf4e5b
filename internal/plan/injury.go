package plan

import (
	"fmt"
	"sort"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
)

// categoryPriority ranks workout categories for the injury transformer:
// when training days must be dropped, the highest-value sessions survive.
var categoryPriority = map[string]int{
	catalog.CategoryLong:      6,
	catalog.CategoryTempo:     5,
	catalog.CategoryIntervals: 4,
	catalog.CategoryHills:     3,
	catalog.CategoryEasy:      2,
	catalog.CategoryRecovery:  1,
}

func dayPriority(d models.DayPlan) int {
	if d.Role == models.RoleLongSession {
		return categoryPriority[catalog.CategoryLong]
	}
	if p, ok := categoryPriority[d.Category]; ok {
		return p
	}
	return 0
}

// equipmentCounts divides total sessions across equipment types as evenly
// as possible: floor(total/types) each, with the remainder going to the
// first types in declaration order. Naive modulo assignment would
// systematically starve later equipment types on short weeks.
func equipmentCounts(total int, types []models.CrossTrainType) []int {
	counts := make([]int, len(types))
	if len(types) == 0 || total <= 0 {
		return counts
	}
	base, rem := total/len(types), total%len(types)
	for i := range counts {
		counts[i] = base
		if i < rem {
			counts[i]++
		}
	}
	return counts
}

// ApplyInjuryRecovery rewrites the weeks [startWeek, startWeek+duration)
// into cross-training-only schedules, dropping reduceBy training days per
// week (lowest-priority first), and turns the week immediately after the
// injury span into a gradual return-to-running week. A new week list is
// returned; the original is untouched so the transform can be reversed
// exactly via RevertInjuryRecovery.
func ApplyInjuryRecovery(weeks []models.WeekPlan, startWeek, duration, reduceBy int, equipment []models.CrossTrainType, cat *catalog.Catalog) ([]models.WeekPlan, error) {
	if startWeek < 1 || startWeek > len(weeks) {
		return nil, fmt.Errorf("injury recovery: start week %d outside plan of %d weeks", startWeek, len(weeks))
	}
	if duration < 1 {
		return nil, fmt.Errorf("injury recovery: duration must be at least 1 week, got %d", duration)
	}
	if len(equipment) == 0 {
		return nil, fmt.Errorf("injury recovery: at least one cross-training equipment type required")
	}

	out := models.CloneWeeks(weeks)

	for w := startWeek; w < startWeek+duration && w <= len(out); w++ {
		rewriteInjuryWeek(&out[w-1], reduceBy, equipment, cat)
	}

	if ret := startWeek + duration; ret <= len(out) {
		rewriteReturnWeek(&out[ret-1], equipment, cat)
	}

	return out, nil
}

// rewriteInjuryWeek keeps the top-priority sessions, rests the dropped
// days, and converts every kept day to an equivalent cross-training
// session with equipment assigned fairly round-robin.
func rewriteInjuryWeek(week *models.WeekPlan, reduceBy int, equipment []models.CrossTrainType, cat *catalog.Catalog) {
	nonRest := week.NonRestDays()
	keepN := len(nonRest) - reduceBy
	if keepN < 1 {
		keepN = 1
	}

	ranked := append([]int(nil), nonRest...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return dayPriority(week.Days[ranked[a]]) > dayPriority(week.Days[ranked[b]])
	})

	kept := ranked[:min(keepN, len(ranked))]
	for _, i := range ranked[min(keepN, len(ranked)):] {
		restDay(&week.Days[i])
	}

	// Keep calendar order for the surviving sessions.
	sort.Ints(kept)

	counts := equipmentCounts(len(kept), equipment)
	eq, used := 0, 0
	for _, i := range kept {
		for eq < len(equipment) && used >= counts[eq] {
			eq, used = eq+1, 0
		}
		e := equipment[min(eq, len(equipment)-1)]
		used++
		crossTrain(&week.Days[i], e, cat)
	}

	RecalcVolumes(week)
}

// rewriteReturnWeek converts the week after the injury span: roughly half
// the sessions become short easy runs at reduced distance, the remainder
// stays on equipment.
func rewriteReturnWeek(week *models.WeekPlan, equipment []models.CrossTrainType, cat *catalog.Catalog) {
	nonRest := week.NonRestDays()
	if len(nonRest) == 0 {
		return
	}

	runN := (len(nonRest) + 1) / 2
	counts := equipmentCounts(len(nonRest)-runN, equipment)
	eq, used := 0, 0

	for n, i := range nonRest {
		d := &week.Days[i]
		if n < runN {
			d.Role = models.RoleEasySession
			d.Distance = roundMiles(d.Distance * 0.5)
			d.Category = catalog.CategoryEasy
			d.Workout = "Return-to-Running Easy Run"
			d.Focus = "gradual return to running"
			continue
		}
		for eq < len(equipment) && used >= counts[eq] {
			eq, used = eq+1, 0
		}
		e := equipment[min(eq, len(equipment)-1)]
		used++
		crossTrain(d, e, cat)
	}

	RecalcVolumes(week)
}

// crossTrain replaces a running day with its equipment equivalent at the
// same effort-equivalent distance.
func crossTrain(d *models.DayPlan, e models.CrossTrainType, cat *catalog.Catalog) {
	wasHard := d.Role == models.RoleLongSession || d.Role == models.RoleHardSession || d.Role == models.RoleCrossTrainHard

	category := catalog.EquipmentCategory(e)
	switch d.Category {
	case catalog.CategoryTempo, catalog.CategoryIntervals, catalog.CategoryHills:
		category = catalog.ForEquipment(e, d.Category)
	}

	entries := cat.Workouts(category)
	var w catalog.Workout
	if len(entries) == 0 {
		w = catalog.Generic(category)
	} else {
		w = entries[0]
	}

	if wasHard {
		d.Role = models.RoleCrossTrainHard
	} else {
		d.Role = models.RoleCrossTrainEasy
	}
	d.Category = category
	d.Workout = w.Name
	d.Focus = w.Focus
}

func restDay(d *models.DayPlan) {
	d.Role = models.RoleRest
	d.Distance = 0
	d.Workout = ""
	d.Category = ""
	d.Focus = "Rest (injury recovery)"
}

// RevertInjuryRecovery restores the pre-injury plan. The original list is
// cloned so later transforms cannot alias it.
func RevertInjuryRecovery(original []models.WeekPlan) []models.WeekPlan {
	return models.CloneWeeks(original)
}
