package calendar

import (
	"fmt"
	"time"

	"tailortalk/models"
)

// Synthetic placeholder data used when no provider session is available.
// Deterministic given the date: weekdays carry a fixed morning standup and a
// fixed afternoon review, weekends are empty.

func syntheticEvents(start, end time.Time) []models.CalendarEvent {
	day := start
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	stamp := day.Format("20060102")
	morning := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, day.Location())
	afternoon := time.Date(day.Year(), day.Month(), day.Day(), 15, 0, 0, 0, day.Location())

	return []models.CalendarEvent{
		{
			ID:     fmt.Sprintf("mock_1_%s", stamp),
			Title:  "Team Standup",
			Start:  morning,
			End:    morning.Add(30 * time.Minute),
			Status: "confirmed",
		},
		{
			ID:     fmt.Sprintf("mock_2_%s", stamp),
			Title:  "Client Review",
			Start:  afternoon,
			End:    afternoon.Add(time.Hour),
			Status: "confirmed",
		},
	}
}

func syntheticCreated(title string, start, end time.Time) *models.CalendarEvent {
	return &models.CalendarEvent{
		ID:     fmt.Sprintf("mock_event_%d", start.Unix()),
		Title:  title,
		Start:  start,
		End:    end,
		Status: "confirmed",
	}
}
