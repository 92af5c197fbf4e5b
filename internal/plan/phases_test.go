package plan

import (
	"testing"

	"github.com/herrenbrad/runplans/internal/models"
)

// TestPhasesCoverage verifies that for any plan length the phase blocks are
// contiguous, non-overlapping, and exactly cover weeks 1..totalWeeks.
func TestPhasesCoverage(t *testing.T) {
	for totalWeeks := 1; totalWeeks <= 30; totalWeeks++ {
		phases, err := Phases(totalWeeks)
		if err != nil {
			t.Fatalf("Phases(%d): %v", totalWeeks, err)
		}

		next := 1
		for _, p := range phases {
			if p.StartWeek != next {
				t.Errorf("Phases(%d): %s starts at %d, want %d", totalWeeks, p.Name, p.StartWeek, next)
			}
			if p.EndWeek < p.StartWeek {
				t.Errorf("Phases(%d): %s ends at %d before start %d", totalWeeks, p.Name, p.EndWeek, p.StartWeek)
			}
			next = p.EndWeek + 1
		}
		if next != totalWeeks+1 {
			t.Errorf("Phases(%d): blocks cover through week %d, want %d", totalWeeks, next-1, totalWeeks)
		}
	}
}

// TestPhasesShortPlanHasNoTaper verifies plans of 8 weeks or fewer use the
// three-block tier without a taper phase.
func TestPhasesShortPlanHasNoTaper(t *testing.T) {
	phases, err := Phases(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range phases {
		if p.Name == models.PhaseTaper {
			t.Errorf("8-week plan contains a taper phase: %+v", p)
		}
	}
}

// TestPhasesStandardPlanOrder verifies a 16-week plan produces the four
// blocks in order with taper last.
func TestPhasesStandardPlanOrder(t *testing.T) {
	phases, err := Phases(16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.PhaseName{models.PhaseBase, models.PhaseBuild, models.PhasePeak, models.PhaseTaper}
	if len(phases) != len(want) {
		t.Fatalf("got %d phases, want %d", len(phases), len(want))
	}
	for i, p := range phases {
		if p.Name != want[i] {
			t.Errorf("phase %d = %s, want %s", i, p.Name, want[i])
		}
	}
	if phases[len(phases)-1].EndWeek != 16 {
		t.Errorf("taper ends at week %d, want 16", phases[len(phases)-1].EndWeek)
	}
}

// TestPhasesInvalid verifies zero-length plans are rejected.
func TestPhasesInvalid(t *testing.T) {
	if _, err := Phases(0); err == nil {
		t.Error("expected error for 0-week plan")
	}
}
