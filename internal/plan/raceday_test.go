package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/herrenbrad/runplans/internal/models"
)

func weekWithDays(week int, days ...models.DayPlan) models.WeekPlan {
	w := models.WeekPlan{Week: week, Days: days}
	RecalcVolumes(&w)
	return w
}

// TestApplyRaceDayByRole verifies the primary matcher: the long session is
// replaced by the race at the canonical distance.
func TestApplyRaceDayByRole(t *testing.T) {
	weeks := []models.WeekPlan{
		weekWithDays(12,
			models.DayPlan{Day: models.Monday, Role: models.RoleRest},
			models.DayPlan{Day: models.Tuesday, Role: models.RoleHardSession, Distance: 5},
			models.DayPlan{Day: models.Wednesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Thursday, Role: models.RoleEasySession, Distance: 4},
			models.DayPlan{Day: models.Friday, Role: models.RoleRest},
			models.DayPlan{Day: models.Saturday, Role: models.RoleEasySession, Distance: 3},
			models.DayPlan{Day: models.Sunday, Role: models.RoleLongSession, Distance: 10},
		),
	}

	out, err := ApplyRaceDay(weeks, models.RaceHalf, time.Time{}, models.Sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	race := out[0].Days[6]
	if race.Role != models.RoleRace {
		t.Fatalf("sunday role = %s, want race", race.Role)
	}
	if race.Distance != 13.1 {
		t.Errorf("race distance = %g, want 13.1", race.Distance)
	}
	if weeks[0].Days[6].Role != models.RoleLongSession {
		t.Error("original week list was modified; transforms must copy")
	}
}

// TestApplyRaceDayByDayFallback verifies the second matcher: with no long
// session, the long-run day's session is replaced.
func TestApplyRaceDayByDayFallback(t *testing.T) {
	weeks := []models.WeekPlan{
		weekWithDays(8,
			models.DayPlan{Day: models.Monday, Role: models.RoleRest},
			models.DayPlan{Day: models.Tuesday, Role: models.RoleEasySession, Distance: 4},
			models.DayPlan{Day: models.Wednesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Thursday, Role: models.RoleEasySession, Distance: 4},
			models.DayPlan{Day: models.Friday, Role: models.RoleRest},
			models.DayPlan{Day: models.Saturday, Role: models.RoleEasySession, Distance: 6},
			models.DayPlan{Day: models.Sunday, Role: models.RoleRest},
		),
	}

	out, err := ApplyRaceDay(weeks, models.Race10K, time.Time{}, models.Saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Days[5].Role != models.RoleRace {
		t.Errorf("saturday role = %s, want race", out[0].Days[5].Role)
	}
	if out[0].Days[5].Distance != 6.2 {
		t.Errorf("race distance = %g, want 6.2", out[0].Days[5].Distance)
	}
}

// TestApplyRaceDayByLongestDistance verifies the final matcher: the
// longest remaining session is replaced when neither role nor day match.
func TestApplyRaceDayByLongestDistance(t *testing.T) {
	weeks := []models.WeekPlan{
		weekWithDays(8,
			models.DayPlan{Day: models.Monday, Role: models.RoleRest},
			models.DayPlan{Day: models.Tuesday, Role: models.RoleEasySession, Distance: 4},
			models.DayPlan{Day: models.Wednesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Thursday, Role: models.RoleEasySession, Distance: 7},
			models.DayPlan{Day: models.Friday, Role: models.RoleRest},
			models.DayPlan{Day: models.Saturday, Role: models.RoleEasySession, Distance: 3},
			models.DayPlan{Day: models.Sunday, Role: models.RoleRest},
		),
	}

	// Long-run day is Sunday, which rests; Thursday carries the most distance.
	out, err := ApplyRaceDay(weeks, models.Race5K, time.Time{}, models.Sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Days[3].Role != models.RoleRace {
		t.Errorf("thursday role = %s, want race", out[0].Days[3].Role)
	}
	if out[0].Days[3].Distance != 3.1 {
		t.Errorf("race distance = %g, want 3.1", out[0].Days[3].Distance)
	}
}

// TestApplyRaceDayNoSlot verifies matcher exhaustion is a hard, typed
// failure: an all-rest final week cannot silently lose its race.
func TestApplyRaceDayNoSlot(t *testing.T) {
	weeks := []models.WeekPlan{
		weekWithDays(8,
			models.DayPlan{Day: models.Monday, Role: models.RoleRest},
			models.DayPlan{Day: models.Tuesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Wednesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Thursday, Role: models.RoleRest},
			models.DayPlan{Day: models.Friday, Role: models.RoleRest},
			models.DayPlan{Day: models.Saturday, Role: models.RoleRest},
			models.DayPlan{Day: models.Sunday, Role: models.RoleRest},
		),
	}

	_, err := ApplyRaceDay(weeks, models.RaceHalf, time.Time{}, models.Sunday)
	if !errors.Is(err, ErrNoRaceSlot) {
		t.Fatalf("error = %v, want ErrNoRaceSlot", err)
	}
}

// TestApplyRaceDayMovesToRaceDate verifies the race lands on the race
// date's weekday, trading sessions with the displaced day, and the week
// still holds one entry per weekday.
func TestApplyRaceDayMovesToRaceDate(t *testing.T) {
	weeks := []models.WeekPlan{
		weekWithDays(12,
			models.DayPlan{Day: models.Monday, Role: models.RoleRest},
			models.DayPlan{Day: models.Tuesday, Role: models.RoleEasySession, Distance: 3},
			models.DayPlan{Day: models.Wednesday, Role: models.RoleRest},
			models.DayPlan{Day: models.Thursday, Role: models.RoleEasySession, Distance: 3},
			models.DayPlan{Day: models.Friday, Role: models.RoleRest},
			models.DayPlan{Day: models.Saturday, Role: models.RoleLongSession, Distance: 8},
			models.DayPlan{Day: models.Sunday, Role: models.RoleRest},
		),
	}

	raceDate := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC) // a Sunday
	out, err := ApplyRaceDay(weeks, models.RaceHalf, raceDate, models.Saturday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	final := out[0]
	if final.Days[6].Role != models.RoleRace {
		t.Errorf("sunday role = %s, want race", final.Days[6].Role)
	}
	if final.Days[5].Role != models.RoleRest {
		t.Errorf("saturday role = %s, want the displaced rest", final.Days[5].Role)
	}

	seen := map[models.Weekday]bool{}
	for _, d := range final.Days {
		if seen[d.Day] {
			t.Fatalf("duplicate weekday %s in final week", d.Day)
		}
		seen[d.Day] = true
	}
}

// TestApplyRaceDayUnsupportedDistance verifies validation of the race
// distance before any substitution.
func TestApplyRaceDayUnsupportedDistance(t *testing.T) {
	weeks := []models.WeekPlan{weekWithDays(1, models.DayPlan{Day: models.Monday, Role: models.RoleEasySession, Distance: 3})}
	if _, err := ApplyRaceDay(weeks, "ultra", time.Time{}, models.Monday); err == nil {
		t.Error("expected error for unsupported race distance")
	}
}
