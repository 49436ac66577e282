package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tailortalk/models"
)

// Gateway wraps a remote calendar provider with the degradation policy of the
// assistant: reads fall back to deterministic synthetic data, writes surface
// their failures. A nil provider means no credentials were configured.
type Gateway struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGateway builds a gateway over the given provider. provider may be nil,
// in which case every call is served synthetically.
func NewGateway(provider Provider, timeout time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{provider: provider, timeout: timeout, logger: logger}
}

// Authenticated reports whether a live provider session exists.
func (g *Gateway) Authenticated() bool {
	return g.provider != nil
}

func (g *Gateway) ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	if g.provider == nil {
		return syntheticEvents(start, end), nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	events, err := g.provider.ListEvents(ctx, start, end)
	if err != nil {
		g.logger.Warn("calendar read failed, degrading to synthetic events", zap.Error(err))
		return syntheticEvents(start, end), nil
	}
	return events, nil
}

func (g *Gateway) CreateEvent(ctx context.Context, title string, start, end time.Time, description string) (*models.CalendarEvent, error) {
	if g.provider == nil {
		return syntheticCreated(title, start, end), nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	event, err := g.provider.CreateEvent(ctx, title, start, end, description)
	if err != nil {
		g.logger.Error("calendar write failed", zap.Error(err))
		return nil, err
	}
	return event, nil
}
