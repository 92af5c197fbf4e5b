package pace

import (
	"fmt"
	"math"

	"github.com/herrenbrad/runplans/internal/models"
)

const metersPerMile = 1609.34

// Zones derives per-zone training paces (seconds per mile) from a VDOT.
// Interval pace tracks equivalent 5K race pace, tempo pace tracks 10K race
// pace with a small cushion, and easy/long paces are backed off marathon
// race pace.
func Zones(vdot float64) (models.PaceSet, error) {
	t5k, err := PredictTime(vdot, models.Race5K)
	if err != nil {
		return models.PaceSet{}, err
	}
	t10k, err := PredictTime(vdot, models.Race10K)
	if err != nil {
		return models.PaceSet{}, err
	}
	tFull, err := PredictTime(vdot, models.RaceMarathon)
	if err != nil {
		return models.PaceSet{}, err
	}

	pace5k := float64(t5k) / models.Race5K.Miles()
	pace10k := float64(t10k) / models.Race10K.Miles()
	paceFull := float64(tFull) / models.RaceMarathon.Miles()

	interval := pace5k * 0.98
	set := models.PaceSet{
		Easy:     math.Round(paceFull * 1.22),
		Tempo:    math.Round(pace10k * 1.04),
		Interval: math.Round(interval),
		Long:     math.Round(paceFull * 1.15),
		Track: &models.TrackTimes{
			Q400:  math.Round(interval * 400 / metersPerMile),
			Q800:  math.Round(interval * 800 / metersPerMile),
			Q1200: math.Round(interval * 1200 / metersPerMile),
		},
	}
	return set, nil
}

// FromResult derives training paces directly from a race result.
func FromResult(distance models.RaceDistance, seconds int) (models.PaceSet, error) {
	vdot, err := FromRace(distance, seconds)
	if err != nil {
		return models.PaceSet{}, err
	}
	return Zones(vdot)
}

// FormatPace renders seconds-per-mile as "M:SS/mi".
func FormatPace(secPerMile float64) string {
	s := int(math.Round(secPerMile))
	return fmt.Sprintf("%d:%02d/mi", s/60, s%60)
}

// FormatDuration renders seconds as "M:SS" or "H:MM:SS".
func FormatDuration(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
