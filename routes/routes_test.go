package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailortalk/handlers"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hb := &handlers.HandlerBundle{
		HandleChat: func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"response": "ok", "booking_confirmed": false})
		},
	}
	RegisterRoutes(r, hb)
	return r
}

func TestHealthRoute(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestChatRouteIsRegistered(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebClientIsServed(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "TailorTalk")
}
