package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"
)

func TestToCalendarEvent(t *testing.T) {
	event := &gcal.Event{
		Id:      "abc123",
		Summary: "Planning",
		Status:  "tentative",
		Start:   &gcal.EventDateTime{DateTime: "2026-03-04T10:00:00Z"},
		End:     &gcal.EventDateTime{DateTime: "2026-03-04T11:00:00Z"},
	}

	got := toCalendarEvent(event)

	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "Planning", got.Title)
	assert.Equal(t, "tentative", got.Status)
	assert.Equal(t, time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC), got.Start)
	assert.Equal(t, time.Hour, got.End.Sub(got.Start))
}

func TestToCalendarEventDefaults(t *testing.T) {
	got := toCalendarEvent(&gcal.Event{Id: "x"})
	assert.Equal(t, "No Title", got.Title)
	assert.Equal(t, "confirmed", got.Status)
	assert.True(t, got.Start.IsZero())

	assert.Equal(t, "", toCalendarEvent(nil).ID)
}

func TestParseEventTimeAllDay(t *testing.T) {
	got := parseEventTime(&gcal.EventDateTime{Date: "2026-03-04"})
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}
