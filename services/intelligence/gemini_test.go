package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompleteWithoutAPIKey(t *testing.T) {
	g, err := NewGeminiCompletion("", time.Second, zap.NewNop())
	require.NoError(t, err)

	got := g.Complete(context.Background(), "what's the weather")
	assert.Equal(t, missingKeyMessage, got)
}

func TestCompleteWithoutAPIKeyIsStable(t *testing.T) {
	g, err := NewGeminiCompletion("", time.Second, zap.NewNop())
	require.NoError(t, err)

	first := g.Complete(context.Background(), "hello")
	second := g.Complete(context.Background(), "hello")
	assert.Equal(t, first, second)
}
