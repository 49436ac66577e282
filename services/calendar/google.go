package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"tailortalk/models"
)

const primaryCalendar = "primary"

// GoogleProvider implements Provider over the Google Calendar v3 API.
type GoogleProvider struct {
	svc *gcal.Service
}

// NewGoogleProvider builds a calendar client from the given credentials.
func NewGoogleProvider(ctx context.Context, creds CredentialProvider) (*GoogleProvider, error) {
	ts, err := creds.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrProviderAuth, err)
	}

	return &GoogleProvider{svc: svc}, nil
}

func (p *GoogleProvider) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	result, err := p.svc.Events.List(primaryCalendar).
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		TimeMax(timeMax.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRead, err)
	}

	events := make([]models.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, toCalendarEvent(item))
	}
	return events, nil
}

func (p *GoogleProvider) CreateEvent(ctx context.Context, summary string, start, end time.Time, description string) (*models.CalendarEvent, error) {
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcal.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := p.svc.Events.Insert(primaryCalendar, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	result := toCalendarEvent(created)
	return &result, nil
}

// toCalendarEvent maps a provider event onto our representation. All-day
// events carry a date instead of a datetime; both are accepted.
func toCalendarEvent(event *gcal.Event) models.CalendarEvent {
	if event == nil {
		return models.CalendarEvent{}
	}

	title := event.Summary
	if title == "" {
		title = "No Title"
	}
	status := event.Status
	if status == "" {
		status = "confirmed"
	}

	return models.CalendarEvent{
		ID:     event.Id,
		Title:  title,
		Start:  parseEventTime(event.Start),
		End:    parseEventTime(event.End),
		Status: status,
	}
}

func parseEventTime(edt *gcal.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
