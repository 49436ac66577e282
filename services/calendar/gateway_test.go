package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailortalk/models"
)

type stubProvider struct {
	events    []models.CalendarEvent
	listErr   error
	created   *models.CalendarEvent
	createErr error
}

func (p *stubProvider) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.CalendarEvent, error) {
	return p.events, p.listErr
}

func (p *stubProvider) CreateEvent(ctx context.Context, summary string, start, end time.Time, description string) (*models.CalendarEvent, error) {
	return p.created, p.createErr
}

var (
	weekday = time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC) // Wednesday
	weekend = time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC) // Saturday
)

func TestSyntheticEventsWeekday(t *testing.T) {
	events := syntheticEvents(weekday, weekday.Add(12*time.Hour))

	require.Len(t, events, 2)

	standup := events[0]
	assert.Equal(t, "mock_1_20260304", standup.ID)
	assert.Equal(t, "Team Standup", standup.Title)
	assert.Equal(t, 10, standup.Start.Hour())
	assert.Equal(t, 30*time.Minute, standup.End.Sub(standup.Start))

	review := events[1]
	assert.Equal(t, "mock_2_20260304", review.ID)
	assert.Equal(t, "Client Review", review.Title)
	assert.Equal(t, 15, review.Start.Hour())
	assert.Equal(t, time.Hour, review.End.Sub(review.Start))
}

func TestSyntheticEventsWeekend(t *testing.T) {
	assert.Empty(t, syntheticEvents(weekend, weekend.Add(12*time.Hour)))
}

func TestSyntheticEventsDeterministic(t *testing.T) {
	first := syntheticEvents(weekday, weekday.Add(12*time.Hour))
	second := syntheticEvents(weekday, weekday.Add(12*time.Hour))
	assert.Equal(t, first, second)
}

func TestGatewayUnauthenticatedList(t *testing.T) {
	g := NewGateway(nil, time.Second, zap.NewNop())

	assert.False(t, g.Authenticated())

	events, err := g.ListEvents(context.Background(), weekday, weekday.Add(12*time.Hour))
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestGatewayUnauthenticatedCreate(t *testing.T) {
	g := NewGateway(nil, time.Second, zap.NewNop())

	start := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)
	event, err := g.CreateEvent(context.Background(), "Scheduled Meeting", start, start.Add(time.Hour), "")
	require.NoError(t, err)

	assert.Equal(t, "mock_event_1772719200", event.ID)
	assert.Equal(t, "Scheduled Meeting", event.Title)
	assert.Equal(t, "confirmed", event.Status)
}

func TestGatewayReadFailureDegradesToSynthetic(t *testing.T) {
	provider := &stubProvider{listErr: ErrProviderRead}
	g := NewGateway(provider, time.Second, zap.NewNop())

	events, err := g.ListEvents(context.Background(), weekday, weekday.Add(12*time.Hour))
	require.NoError(t, err, "read failures must not propagate")
	assert.Len(t, events, 2, "synthetic events expected on degradation")
}

func TestGatewayWriteFailureIsSurfaced(t *testing.T) {
	provider := &stubProvider{createErr: ErrWriteFailed}
	g := NewGateway(provider, time.Second, zap.NewNop())

	_, err := g.CreateEvent(context.Background(), "Scheduled Meeting", weekday, weekday.Add(time.Hour), "")
	assert.True(t, errors.Is(err, ErrWriteFailed))
}

func TestGatewayPassesProviderEventsThrough(t *testing.T) {
	provider := &stubProvider{events: []models.CalendarEvent{
		{ID: "real_1", Title: "1:1", Start: weekday, End: weekday.Add(time.Hour), Status: "confirmed"},
	}}
	g := NewGateway(provider, time.Second, zap.NewNop())

	events, err := g.ListEvents(context.Background(), weekday, weekday.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "real_1", events[0].ID)
}
