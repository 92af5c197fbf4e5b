package plan

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/herrenbrad/runplans/internal/catalog"
	"github.com/herrenbrad/runplans/internal/models"
)

// historyLimit bounds the per-category recently-used list.
const historyLimit = 5

// repProgressCap: repeat counts reach their range maximum at 75% of the
// plan; the final quarter holds there rather than piling on.
const repProgressCap = 0.75

// Selector picks named workouts from the catalog while avoiding recent
// repeats. A Selector is owned by exactly one plan-generation session;
// sharing one across concurrent generations would leak workout history
// between unrelated athletes.
type Selector struct {
	cat    *catalog.Catalog
	rng    *rand.Rand
	recent map[string][]string
}

// NewSelector creates a selector over the given catalog. The seed makes
// selection reproducible for tests; serve-path callers pass a random seed.
func NewSelector(cat *catalog.Catalog, seed int64) *Selector {
	return &Selector{
		cat:    cat,
		rng:    rand.New(rand.NewSource(seed)),
		recent: make(map[string][]string),
	}
}

// Reset clears all selection history.
func (s *Selector) Reset() {
	s.recent = make(map[string][]string)
}

// Pick selects a workout from the category, excluding recently used names.
// Categories with two or fewer entries exclude only the single most recent
// name; larger categories exclude the last two. If exclusion empties the
// candidate set the history is reset first. A category with no catalog
// entries at all degrades to the generic placeholder.
func (s *Selector) Pick(category string, week, totalWeeks int) catalog.Workout {
	entries := s.cat.Workouts(category)
	if len(entries) == 0 {
		return s.resolveReps(catalog.Generic(category), week, totalWeeks)
	}

	excludeN := 2
	if len(entries) <= 2 {
		excludeN = 1
	}
	candidates := s.exclude(category, entries, excludeN)
	if len(candidates) == 0 {
		s.recent[category] = nil
		candidates = entries
	}

	w := candidates[s.rng.Intn(len(candidates))]

	hist := append(s.recent[category], w.Name)
	if len(hist) > historyLimit {
		hist = hist[len(hist)-historyLimit:]
	}
	s.recent[category] = hist

	return s.resolveReps(w, week, totalWeeks)
}

// exclude filters out the last n used names for the category.
func (s *Selector) exclude(category string, entries []catalog.Workout, n int) []catalog.Workout {
	hist := s.recent[category]
	if len(hist) > n {
		hist = hist[len(hist)-n:]
	}
	if len(hist) == 0 {
		return entries
	}

	used := make(map[string]bool, len(hist))
	for _, name := range hist {
		used[name] = true
	}
	var out []catalog.Workout
	for _, e := range entries {
		if !used[e.Name] {
			out = append(out, e)
		}
	}
	return out
}

// resolveReps turns a repeat-range prescription into a concrete count by
// linear progression against plan completion, then substitutes it into the
// structure text.
func (s *Selector) resolveReps(w catalog.Workout, week, totalWeeks int) catalog.Workout {
	if w.Reps == nil || !strings.Contains(w.Structure, "%d") {
		return w
	}

	progress := 1.0
	if totalWeeks > 0 {
		progress = math.Min(1, (float64(week)/float64(totalWeeks))/repProgressCap)
	}
	count := w.Reps.Min + int(math.Round(progress*float64(w.Reps.Max-w.Reps.Min)))

	w.Structure = fmt.Sprintf(w.Structure, count)
	w.Reps = nil
	return w
}

// HardCategory chooses the quality-workout category for a phase. Base
// favors tempo and hills over track work; Peak favors intervals.
func (s *Selector) HardCategory(phase models.PhaseName) string {
	switch phase {
	case models.PhaseBase:
		if s.rng.Intn(3) == 0 {
			return catalog.CategoryHills
		}
		return catalog.CategoryTempo
	case models.PhaseBuild:
		switch s.rng.Intn(4) {
		case 0:
			return catalog.CategoryHills
		case 1, 2:
			return catalog.CategoryTempo
		default:
			return catalog.CategoryIntervals
		}
	case models.PhasePeak:
		if s.rng.Intn(4) == 0 {
			return catalog.CategoryTempo
		}
		return catalog.CategoryIntervals
	default: // taper keeps a light touch of speed
		return catalog.CategoryTempo
	}
}
