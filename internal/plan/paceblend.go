package plan

import (
	"math"

	"github.com/herrenbrad/runplans/internal/models"
)

// ProgressionRatio is the fraction of the way from current fitness toward
// goal fitness at the given week. It reaches 1.0 in the final week and
// never decreases week over week.
func ProgressionRatio(week, totalWeeks int) float64 {
	if totalWeeks <= 0 {
		return 1
	}
	return math.Min(1, float64(week)/float64(totalWeeks))
}

// BlendPaces interpolates each pace zone between the athlete's current
// fitness and the goal for the given week. Prescribing goal pace in week 1
// when measured fitness is slower would be wrong, not just unkind; the
// blend walks the athlete there across the plan.
//
// When current is nil there is nothing to blend from: the goal set is
// returned unchanged for every week with ratio 1. Callers must flag that
// degraded mode in the plan output.
func BlendPaces(current *models.PaceSet, goal models.PaceSet, week, totalWeeks int) models.WeekPaces {
	if current == nil {
		return models.WeekPaces{Week: week, Ratio: 1, Paces: goal}
	}

	ratio := ProgressionRatio(week, totalWeeks)
	blended := models.PaceSet{
		Easy:     lerp(current.Easy, goal.Easy, ratio),
		Tempo:    lerp(current.Tempo, goal.Tempo, ratio),
		Interval: lerp(current.Interval, goal.Interval, ratio),
		Long:     lerp(current.Long, goal.Long, ratio),
	}
	if current.Track != nil && goal.Track != nil {
		blended.Track = &models.TrackTimes{
			Q400:  lerp(current.Track.Q400, goal.Track.Q400, ratio),
			Q800:  lerp(current.Track.Q800, goal.Track.Q800, ratio),
			Q1200: lerp(current.Track.Q1200, goal.Track.Q1200, ratio),
		}
	} else if goal.Track != nil {
		track := *goal.Track
		blended.Track = &track
	}
	return models.WeekPaces{Week: week, Ratio: ratio, Paces: blended}
}

func lerp(from, to, ratio float64) float64 {
	return math.Round(from + ratio*(to-from))
}
