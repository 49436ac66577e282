package models

import "time"

// CalendarEvent is the provider-independent view of a calendar event.
// Identity is provider-assigned, or deterministic when synthesized.
type CalendarEvent struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}
