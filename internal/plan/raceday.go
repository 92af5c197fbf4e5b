package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/herrenbrad/runplans/internal/models"
)

// ErrNoRaceSlot is returned when no matcher can locate a session to replace
// with race day. A plan silently missing its race is incorrect, so this is
// a hard failure, not a logged warning.
var ErrNoRaceSlot = errors.New("no session found to replace with race day")

// raceSlotMatcher is one strategy for locating the race-day slot in the
// final week. Matchers run in order; the first hit wins.
type raceSlotMatcher struct {
	name  string
	match func(week *models.WeekPlan, longRunDay models.Weekday) int
}

var raceSlotMatchers = []raceSlotMatcher{
	{
		name: "by_role",
		match: func(week *models.WeekPlan, _ models.Weekday) int {
			for i, d := range week.Days {
				if d.Role == models.RoleLongSession {
					return i
				}
			}
			return -1
		},
	},
	{
		name: "by_day",
		match: func(week *models.WeekPlan, longRunDay models.Weekday) int {
			for i, d := range week.Days {
				if d.Day == longRunDay && d.Role != models.RoleRest {
					return i
				}
			}
			return -1
		},
	},
	{
		name: "by_longest_distance",
		match: func(week *models.WeekPlan, _ models.Weekday) int {
			best, bestDist := -1, 0.0
			for i, d := range week.Days {
				if d.Role != models.RoleRest && d.Distance > bestDist {
					best, bestDist = i, d.Distance
				}
			}
			return best
		},
	},
}

// raceFocus is the race-specific pacing guidance attached to the race day.
var raceFocus = map[models.RaceDistance]string{
	models.Race5K:       "Race day. Go out controlled for the first mile, then race.",
	models.Race10K:      "Race day. Even effort through 4 miles, then empty the tank.",
	models.RaceHalf:     "Race day. Settle into goal pace by mile 2 and hold steady.",
	models.RaceMarathon: "Race day. Patience through 20 miles; the race starts there.",
}

// ApplyRaceDay substitutes the race into the final week of the plan and
// returns a new week list; the input list is not modified. The slot is
// located by the ordered matcher chain: the long session by role, else the
// long-run day, else the longest remaining session.
func ApplyRaceDay(weeks []models.WeekPlan, distance models.RaceDistance, raceDate time.Time, longRunDay models.Weekday) ([]models.WeekPlan, error) {
	if len(weeks) == 0 {
		return nil, fmt.Errorf("race day: plan has no weeks")
	}
	if distance.Miles() == 0 {
		return nil, fmt.Errorf("race day: unsupported race distance %q", distance)
	}

	out := models.CloneWeeks(weeks)
	final := &out[len(out)-1]

	idx := -1
	for _, m := range raceSlotMatchers {
		if idx = m.match(final, longRunDay); idx >= 0 {
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("race day in week %d: %w", final.Week, ErrNoRaceSlot)
	}

	// If the race date falls on a different weekday than the matched slot,
	// move the race there and let the displaced session trade places, so
	// the week still holds one entry per weekday.
	if !raceDate.IsZero() {
		want := models.FromTimeWeekday(raceDate.Weekday())
		if final.Days[idx].Day != want {
			for i, d := range final.Days {
				if d.Day == want {
					swapSessions(&final.Days[idx], &final.Days[i])
					idx = i
					break
				}
			}
		}
	}

	day := &final.Days[idx]
	day.Role = models.RoleRace
	day.Distance = distance.Miles()
	day.Workout = distance.Label() + " Race"
	day.Category = ""
	day.Focus = raceFocus[distance]

	RecalcVolumes(final)
	return out, nil
}

// swapSessions exchanges the session content of two days, leaving their
// weekday and date identity in place.
func swapSessions(a, b *models.DayPlan) {
	a.Role, b.Role = b.Role, a.Role
	a.Distance, b.Distance = b.Distance, a.Distance
	a.Workout, b.Workout = b.Workout, a.Workout
	a.Category, b.Category = b.Category, a.Category
	a.Focus, b.Focus = b.Focus, a.Focus
}
