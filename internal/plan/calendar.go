package plan

import (
	"time"

	"github.com/herrenbrad/runplans/internal/models"
)

// mondayOf returns midnight of the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// TotalWeeks counts plan weeks from the start date through the race date.
// Weeks are Monday-based; week 1 may be partial when the start date falls
// mid-week.
func TotalWeeks(start, race time.Time) int {
	if race.Before(start) {
		return 0
	}
	days := int(mondayOf(race).Sub(mondayOf(start)).Hours() / 24)
	return days/7 + 1
}

// projectDates stamps calendar dates onto a Monday-ordered week and marks
// week-1 days that precede the plan start. Days are already in calendar
// order because the plan week is Monday-first.
func projectDates(week *models.WeekPlan, start time.Time, weekNumber int) {
	monday := mondayOf(start).AddDate(0, 0, (weekNumber-1)*7)
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for i := range week.Days {
		date := monday.AddDate(0, 0, week.Days[i].Day.Index())
		week.Days[i].Date = date
		if weekNumber == 1 && date.Before(startDay) {
			// Part of the calendar week but before the plan begins.
			week.Days[i].BeforeStart = true
			week.Days[i].Role = models.RoleRest
			week.Days[i].Distance = 0
			week.Days[i].Workout = ""
			week.Days[i].Category = ""
			week.Days[i].Focus = "Before plan start"
		}
	}
}
