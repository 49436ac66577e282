package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailortalk/models"
	"tailortalk/services/agent"
	"tailortalk/services/calendar"
	"tailortalk/services/intelligence"
	"tailortalk/services/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	gateway := calendar.NewGateway(nil, time.Second, logger)
	orchestrator := &agent.Orchestrator{
		Processor: &agent.Processor{},
		Tools: &agent.Toolbox{
			Calendar: gateway,
			Logger:   logger,
			Now: func() time.Time {
				return time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
			},
		},
	}

	// No API key configured: the fallback degrades to its fixed message.
	completion, err := intelligence.NewGeminiCompletion("", time.Second, logger)
	require.NoError(t, err)

	handler := NewChatHandler(orchestrator, session.NewMemoryStore(), completion, logger)

	r := gin.New()
	r.POST("/chat", handler.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, message, sessionID string) (int, models.ChatResponse) {
	t.Helper()

	body, err := json.Marshal(models.ChatMessage{Message: message, SessionID: sessionID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.ChatResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestChatSchedulingMessage(t *testing.T) {
	r := newTestRouter(t)

	code, resp := postChat(t, r, "I want to schedule a call for tomorrow afternoon", "s1")

	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.Response, "Let me check what times are available")
	assert.False(t, resp.BookingConfirmed)
}

func TestChatConfirmationBooksEvent(t *testing.T) {
	r := newTestRouter(t)

	postChat(t, r, "I want to schedule a call for tomorrow afternoon", "s1")
	code, resp := postChat(t, r, "yes, confirm it", "s1")

	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.Response, "Event ID: mock_event_")
	assert.True(t, resp.BookingConfirmed)
}

func TestChatFallbackWithoutAPIKey(t *testing.T) {
	r := newTestRouter(t)

	code, resp := postChat(t, r, "what's the weather", "s2")

	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.Response, "API key not found")
	assert.False(t, resp.BookingConfirmed)
}

func TestChatSessionStateSurvivesAcrossRequests(t *testing.T) {
	r := newTestRouter(t)

	_, first := postChat(t, r, "schedule a call tomorrow", "s3")
	assert.Contains(t, first.Response, "Here are some available time slots:")

	_, second := postChat(t, r, "schedule a call tomorrow", "s3")
	assert.NotContains(t, second.Response, "Here are some available time slots:",
		"slots must only be suggested once per session")
}

func TestChatSessionsAreIsolated(t *testing.T) {
	r := newTestRouter(t)

	postChat(t, r, "schedule a call tomorrow", "a")
	_, resp := postChat(t, r, "schedule a call tomorrow", "b")

	assert.Contains(t, resp.Response, "Here are some available time slots:")
}

func TestChatMissingMessageIsRejected(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(`{"session_id":"s1"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatMalformedBodyIsRejected(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
