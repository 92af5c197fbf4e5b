package plan

import (
	"fmt"
	"math"

	"github.com/herrenbrad/runplans/internal/models"
)

// phaseShare is one block of the phase proportion tier.
type phaseShare struct {
	name  models.PhaseName
	share float64
}

// shortPlanShares applies to plans of 8 weeks or fewer: no taper block.
var shortPlanShares = []phaseShare{
	{models.PhaseBase, 0.40},
	{models.PhaseBuild, 0.40},
	{models.PhasePeak, 0.20},
}

// standardShares applies to plans longer than 8 weeks.
var standardShares = []phaseShare{
	{models.PhaseBase, 0.40},
	{models.PhaseBuild, 0.35},
	{models.PhasePeak, 0.15},
	{models.PhaseTaper, 0.10},
}

// Phases splits totalWeeks into contiguous Base/Build/Peak/Taper blocks.
// Each block's length is the ceiling of its share, except the last block,
// which absorbs the remainder so the blocks exactly cover [1, totalWeeks].
func Phases(totalWeeks int) ([]models.Phase, error) {
	if totalWeeks < 1 {
		return nil, fmt.Errorf("phases: plan must span at least 1 week, got %d", totalWeeks)
	}

	shares := standardShares
	if totalWeeks <= 8 {
		shares = shortPlanShares
	}

	phases := make([]models.Phase, 0, len(shares))
	next := 1
	for i, s := range shares {
		remaining := totalWeeks - next + 1
		if remaining <= 0 {
			break
		}
		length := int(math.Ceil(float64(totalWeeks) * s.share))
		if i == len(shares)-1 {
			length = remaining
		}
		// Leave at least one week for each block still to come.
		if blocksLeft := len(shares) - i - 1; length > remaining-blocksLeft {
			length = remaining - blocksLeft
		}
		if length < 1 {
			length = 1
		}
		phases = append(phases, models.Phase{
			Name:      s.name,
			StartWeek: next,
			EndWeek:   next + length - 1,
		})
		next += length
	}

	// Ceiling rounding can exhaust the weeks early; the last emitted block
	// always extends to the final week.
	phases[len(phases)-1].EndWeek = totalWeeks
	return phases, nil
}

// PhaseFor returns the phase containing the given week.
func PhaseFor(phases []models.Phase, week int) models.PhaseName {
	for _, p := range phases {
		if week >= p.StartWeek && week <= p.EndWeek {
			return p.Name
		}
	}
	return models.PhaseBase
}
