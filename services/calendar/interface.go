package calendar

import (
	"context"
	"time"

	"tailortalk/models"
)

// Service is the calendar boundary used by the scheduling agent.
//
// ListEvents returns events intersecting [start, end] ordered by start time,
// degrading to synthetic data when the provider is unavailable. CreateEvent
// surfaces provider failures to the caller; a booking must never silently
// pretend to have succeeded.
type Service interface {
	ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, title string, start, end time.Time, description string) (*models.CalendarEvent, error)
}

// Provider is the raw remote-calendar boundary wrapped by the Gateway.
// Authentication and token refresh live behind CredentialProvider.
type Provider interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, summary string, start, end time.Time, description string) (*models.CalendarEvent, error)
}
