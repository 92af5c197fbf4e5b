// Package plan implements the periodized training-plan engine: week-by-week
// volume targets, phase segmentation, pace progression, daily schedule
// assembly, workout variety, and the race-day and injury-recovery
// transforms.
package plan

import (
	"fmt"
	"math"

	"github.com/herrenbrad/runplans/internal/models"
)

// peakBand is the peak weekly volume and peak long-run distance for one
// race distance at one weekly session count, before experience scaling.
type peakBand struct {
	volume  float64
	longRun float64
}

// peakTable is indexed by race distance, then weekly session count (3-6).
var peakTable = map[models.RaceDistance]map[int]peakBand{
	models.Race5K: {
		3: {18, 5}, 4: {20, 6}, 5: {24, 6}, 6: {28, 7},
	},
	models.Race10K: {
		3: {22, 7}, 4: {25, 8}, 5: {28, 8}, 6: {32, 9},
	},
	models.RaceHalf: {
		3: {28, 10}, 4: {32, 11}, 5: {36, 12}, 6: {40, 13},
	},
	models.RaceMarathon: {
		3: {42, 18}, 4: {46, 19}, 5: {50, 20}, 6: {55, 22},
	},
}

// longRunFloor is the minimum peak long-session distance per race distance.
// The floor overrides experience scaling in both directions.
var longRunFloor = map[models.RaceDistance]float64{
	models.Race5K:       5,
	models.Race10K:      7,
	models.RaceHalf:     10,
	models.RaceMarathon: 20,
}

// Experience multipliers applied to the peak band.
var experienceScale = map[models.ExperienceLevel]struct{ volume, longRun float64 }{
	models.Beginner:     {0.8, 0.9},
	models.Intermediate: {1.0, 1.0},
	models.Advanced:     {1.15, 1.1},
}

const (
	taperFinalFactor = 0.60 // race week
	taperPrevFactor  = 0.70 // week before race week
	recoveryFactor   = 0.75
	recoveryCadence  = 4
	longRunShare     = 0.4 // max long-run fraction of weekly volume
)

// PeakTargets returns the experience-scaled peak weekly volume and long-run
// distance for the given inputs, with the long-run floor applied.
func PeakTargets(distance models.RaceDistance, sessions int, exp models.ExperienceLevel) (volume, longRun float64, err error) {
	bands, ok := peakTable[distance]
	if !ok {
		return 0, 0, fmt.Errorf("periodization: unsupported race distance %q", distance)
	}
	if sessions < 3 {
		return 0, 0, fmt.Errorf("periodization: %d sessions per week is below the supported minimum of 3", sessions)
	}
	if sessions > 6 {
		sessions = 6
	}
	band := bands[sessions]

	scale, ok := experienceScale[exp]
	if !ok {
		return 0, 0, fmt.Errorf("periodization: unsupported experience level %q", exp)
	}

	volume = band.volume * scale.volume
	longRun = band.longRun * scale.longRun
	if floor := longRunFloor[distance]; longRun < floor {
		longRun = floor
	}
	return volume, longRun, nil
}

// WeekTargets computes the full periodization: one target per week from 1
// through totalWeeks. Build weeks interpolate linearly from the athlete's
// current volume and long run up to the peak; the final two weeks taper to
// 70% and 60% of peak volume; every 4th week outside the final two is a
// recovery week at 75% of its interpolated value. If the athlete's current
// volume already meets or exceeds the computed peak, the progression holds
// flat rather than regressing.
func WeekTargets(currentVolume, currentLongRun float64, totalWeeks int, distance models.RaceDistance, sessions int, exp models.ExperienceLevel) ([]models.WeekTarget, error) {
	if totalWeeks < 1 {
		return nil, fmt.Errorf("periodization: plan must span at least 1 week, got %d", totalWeeks)
	}
	if currentVolume <= 0 || currentLongRun <= 0 {
		return nil, fmt.Errorf("periodization: current volume and long run must be positive")
	}

	peakVolume, peakLongRun, err := PeakTargets(distance, sessions, exp)
	if err != nil {
		return nil, err
	}
	// Never plan a regression: a fitter-than-peak athlete holds steady.
	if peakVolume < currentVolume {
		peakVolume = currentVolume
	}
	if peakLongRun < currentLongRun {
		peakLongRun = currentLongRun
	}

	taperWeeks := 2
	if totalWeeks <= taperWeeks {
		taperWeeks = totalWeeks - 1
	}
	buildWeeks := totalWeeks - taperWeeks

	targets := make([]models.WeekTarget, 0, totalWeeks)
	for week := 1; week <= totalWeeks; week++ {
		var t models.WeekTarget
		t.Week = week

		switch {
		case week > buildWeeks:
			// Taper: volume off the peak, lowest closest to race day.
			factor := taperPrevFactor
			if week == totalWeeks {
				factor = taperFinalFactor
			}
			t.Volume = roundMiles(peakVolume * factor)
			t.LongRun = roundMiles(t.Volume * 0.3)
		default:
			frac := 0.0
			if buildWeeks > 1 {
				frac = float64(week-1) / float64(buildWeeks-1)
			}
			t.Volume = roundMiles(currentVolume + frac*(peakVolume-currentVolume))
			t.LongRun = roundMiles(currentLongRun + frac*(peakLongRun-currentLongRun))
			if week == 1 {
				// Week 1 is always exactly where the athlete is today.
				t.Volume = currentVolume
				t.LongRun = currentLongRun
			}

			if week%recoveryCadence == 0 && week <= totalWeeks-2 {
				t.Recovery = true
				t.Volume = roundMiles(t.Volume * recoveryFactor)
				t.LongRun = roundMiles(t.LongRun * recoveryFactor)
			}
		}

		// Cap the long run at its share of weekly volume, except where the
		// race-distance floor demands more.
		maxLong := t.Volume * longRunShare
		if t.LongRun > maxLong && t.LongRun > longRunFloor[distance] {
			t.LongRun = roundMiles(math.Max(maxLong, longRunFloor[distance]))
		}

		targets = append(targets, t)
	}
	return targets, nil
}

// roundMiles rounds to the nearest half mile.
func roundMiles(x float64) float64 {
	return math.Round(x*2) / 2
}
