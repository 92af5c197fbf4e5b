// Package pace estimates fitness from race results and derives per-zone
// training paces. It implements the PaceCalculator collaborator consumed by
// the plan engine: (raceDistance, raceTime) → PaceSet.
package pace

import (
	"fmt"
	"math"

	"github.com/herrenbrad/runplans/internal/models"
)

// tableRow is one row of the Daniels VDOT table: equivalent race times in
// seconds per distance for a given VDOT.
type tableRow struct {
	vdot float64
	t5k  float64
	t10k float64
	half float64
	full float64
}

// vdotTable covers recreational through elite fitness (VDOT 30-85).
var vdotTable = []tableRow{
	{30, 1860, 3876, 8388, 17496},
	{32, 1752, 3654, 7896, 16488},
	{34, 1656, 3450, 7458, 15570},
	{36, 1572, 3270, 7062, 14730},
	{38, 1494, 3102, 6702, 13956},
	{40, 1422, 2952, 6372, 13248},
	{42, 1356, 2814, 6078, 12600},
	{44, 1296, 2688, 5802, 12006},
	{46, 1242, 2568, 5550, 11460},
	{48, 1188, 2460, 5316, 10956},
	{50, 1140, 2364, 5100, 10494},
	{52, 1098, 2274, 4902, 10068},
	{54, 1056, 2190, 4716, 9678},
	{56, 1020, 2112, 4548, 9312},
	{58, 984, 2040, 4392, 8976},
	{60, 954, 1974, 4248, 8664},
	{62, 924, 1914, 4116, 8376},
	{64, 900, 1860, 3990, 8106},
	{66, 876, 1806, 3876, 7860},
	{68, 852, 1758, 3768, 7626},
	{70, 834, 1716, 3672, 7410},
	{72, 810, 1674, 3582, 7212},
	{74, 792, 1632, 3498, 7026},
	{76, 774, 1596, 3420, 6852},
	{78, 756, 1560, 3348, 6690},
	{80, 744, 1530, 3282, 6540},
	{82, 726, 1500, 3216, 6396},
	{84, 714, 1470, 3156, 6264},
	{85, 708, 1458, 3126, 6198},
}

func (r tableRow) timeFor(d models.RaceDistance) float64 {
	switch d {
	case models.Race5K:
		return r.t5k
	case models.Race10K:
		return r.t10k
	case models.RaceHalf:
		return r.half
	case models.RaceMarathon:
		return r.full
	}
	return 0
}

// FromRace estimates VDOT from a race result. The result is interpolated
// between table rows and clamped to the table's range.
func FromRace(distance models.RaceDistance, seconds int) (float64, error) {
	if distance.Miles() == 0 {
		return 0, fmt.Errorf("pace: unsupported race distance %q", distance)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("pace: race time must be positive, got %d", seconds)
	}

	t := float64(seconds)
	first, last := vdotTable[0], vdotTable[len(vdotTable)-1]
	if t >= first.timeFor(distance) {
		return first.vdot, nil
	}
	if t <= last.timeFor(distance) {
		return last.vdot, nil
	}

	// Times decrease as VDOT increases; binary search for the bracket.
	lo, hi := 0, len(vdotTable)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t <= vdotTable[mid].timeFor(distance) {
			lo = mid
		} else {
			hi = mid
		}
	}

	a, b := vdotTable[lo], vdotTable[hi]
	ta, tb := a.timeFor(distance), b.timeFor(distance)
	if ta == tb {
		return a.vdot, nil
	}
	frac := (ta - t) / (ta - tb)
	return math.Round((a.vdot+frac*(b.vdot-a.vdot))*10) / 10, nil
}

// PredictTime returns the equivalent race time in seconds for a target
// distance at the given VDOT.
func PredictTime(vdot float64, distance models.RaceDistance) (int, error) {
	if distance.Miles() == 0 {
		return 0, fmt.Errorf("pace: unsupported race distance %q", distance)
	}
	if vdot <= 0 {
		return 0, fmt.Errorf("pace: VDOT must be positive, got %g", vdot)
	}

	if vdot <= vdotTable[0].vdot {
		return int(math.Round(vdotTable[0].timeFor(distance))), nil
	}
	last := vdotTable[len(vdotTable)-1]
	if vdot >= last.vdot {
		return int(math.Round(last.timeFor(distance))), nil
	}

	lo, hi := 0, len(vdotTable)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if vdotTable[mid].vdot <= vdot {
			lo = mid
		} else {
			hi = mid
		}
	}

	a, b := vdotTable[lo], vdotTable[hi]
	frac := (vdot - a.vdot) / (b.vdot - a.vdot)
	t := a.timeFor(distance) + frac*(b.timeFor(distance)-a.timeFor(distance))
	return int(math.Round(t)), nil
}

// FitnessLabel maps a VDOT value to a human-readable level.
func FitnessLabel(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	case vdot >= 30:
		return "Beginner"
	}
	return "Novice"
}
