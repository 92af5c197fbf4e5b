package plan

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
)

func testGenerator() *Generator {
	return NewGenerator(catalog.Builtin(), testLogger())
}

// TestGenerateFullPlan verifies the end-to-end shape of a generated plan:
// one week per calendar week, phases and targets aligned, weekly paces for
// every week, and a race in the final week.
func TestGenerateFullPlan(t *testing.T) {
	p := testProfile()
	p.RecentRace = &models.RaceResult{Distance: models.Race10K, Seconds: 50 * 60}

	plan, err := testGenerator().Generate(p, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := TotalWeeks(p.StartDate, p.RaceDate)
	if plan.Overview.TotalWeeks != want {
		t.Errorf("overview total weeks = %d, want %d", plan.Overview.TotalWeeks, want)
	}
	if len(plan.Weeks) != want {
		t.Fatalf("got %d weeks, want %d", len(plan.Weeks), want)
	}
	if len(plan.Targets) != want {
		t.Errorf("got %d targets, want %d", len(plan.Targets), want)
	}
	if len(plan.Paces.Weekly) != want {
		t.Errorf("got %d weekly pace sets, want %d", len(plan.Paces.Weekly), want)
	}
	if plan.Paces.GoalOnly {
		t.Error("goal-only flag set despite a recent race result")
	}

	for i, wk := range plan.Weeks {
		if wk.Week != i+1 {
			t.Errorf("week %d numbered %d", i+1, wk.Week)
		}
		if len(wk.Days) != 7 {
			t.Errorf("week %d has %d days, want 7", wk.Week, len(wk.Days))
		}
		if wk.Phase == "" {
			t.Errorf("week %d has no phase", wk.Week)
		}
	}

	if plan.Overview.PeakVolume < p.CurrentWeeklyMiles {
		t.Errorf("peak volume %g below starting volume %g", plan.Overview.PeakVolume, p.CurrentWeeklyMiles)
	}
}

// TestGenerateRaceInFinalWeek verifies the final week carries exactly one
// race session at the canonical distance on the race date.
func TestGenerateRaceInFinalWeek(t *testing.T) {
	p := testProfile()
	plan, err := testGenerator().Generate(p, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	final := plan.Weeks[len(plan.Weeks)-1]
	races := 0
	for _, d := range final.Days {
		if d.Role != models.RoleRace {
			continue
		}
		races++
		if d.Distance != p.RaceDistance.Miles() {
			t.Errorf("race distance = %g, want %g", d.Distance, p.RaceDistance.Miles())
		}
		if d.Day != models.Sunday {
			t.Errorf("race on %s, want sunday (race date is a sunday)", d.Day)
		}
	}
	if races != 1 {
		t.Fatalf("final week has %d race sessions, want 1", races)
	}

	for _, wk := range plan.Weeks[:len(plan.Weeks)-1] {
		for _, d := range wk.Days {
			if d.Role == models.RoleRace {
				t.Errorf("week %d has a race session before the final week", wk.Week)
			}
		}
	}
}

// TestGenerateGoalOnlyWithoutRecentRace verifies the degraded pacing mode:
// no recent race means every week runs at goal pace and the plan says so.
func TestGenerateGoalOnlyWithoutRecentRace(t *testing.T) {
	p := testProfile()
	p.RecentRace = nil

	plan, err := testGenerator().Generate(p, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !plan.Paces.GoalOnly {
		t.Error("expected goal-only flag without a recent race")
	}
	if plan.Paces.Current != nil {
		t.Error("current paces should be nil without a recent race")
	}
	for _, wp := range plan.Paces.Weekly {
		if wp.Paces.Easy != plan.Paces.Goal.Easy {
			t.Fatalf("week %d easy pace %g differs from goal %g in goal-only mode",
				wp.Week, wp.Paces.Easy, plan.Paces.Goal.Easy)
		}
	}
}

// TestGenerateRejectsInvalidProfile verifies validation failures surface as
// field-level errors before any plan work happens.
func TestGenerateRejectsInvalidProfile(t *testing.T) {
	p := testProfile()
	p.AvailableDays = []models.Weekday{models.Monday}

	_, err := testGenerator().Generate(p, 1)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a validation error", err)
	}
}

// TestGenerateRejectsShortPlan verifies a start date too close to the race
// is an error rather than a degenerate plan.
func TestGenerateRejectsShortPlan(t *testing.T) {
	p := testProfile()
	p.StartDate = time.Date(2026, 6, 29, 0, 0, 0, 0, time.UTC)
	p.RaceDate = time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)

	if _, err := testGenerator().Generate(p, 1); err == nil {
		t.Fatal("expected error for a 2-week plan window")
	}
}

// TestGenerateDeterministicWithSeed verifies identical profile and seed
// produce identical plans, and different seeds vary the workouts.
func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, err := testGenerator().Generate(testProfile(), 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := testGenerator().Generate(testProfile(), 7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different plans")
	}

	c, err := testGenerator().Generate(testProfile(), 8)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reflect.DeepEqual(a.Weeks, c.Weeks) {
		t.Error("different seeds produced identical workout selections")
	}
}
