package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tailortalk/models"
	"tailortalk/services/agent"
	"tailortalk/services/intelligence"
	"tailortalk/services/session"
	"tailortalk/utils"
)

// ChatHandler serves the chat endpoint: scheduling messages go through the
// agent loop, everything else through the completion fallback.
type ChatHandler struct {
	orchestrator *agent.Orchestrator
	sessions     session.Store
	completion   intelligence.CompletionService
	logger       *zap.Logger
}

func NewChatHandler(orch *agent.Orchestrator, store session.Store, completion intelligence.CompletionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		orchestrator: orch,
		sessions:     store,
		completion:   completion,
		logger:       logger,
	}
}

// HandleChat processes POST /chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	ctx := c.Request.Context()

	if !agent.MentionsScheduling(req.Message) {
		text := h.completion.Complete(ctx, req.Message)
		c.JSON(http.StatusOK, models.ChatResponse{Response: text, BookingConfirmed: false})
		return
	}

	sess, err := h.sessions.Get(ctx, req.SessionID)
	if err != nil {
		h.logger.Warn("failed to load session, starting fresh",
			zap.String("sessionID", req.SessionID), zap.Error(err))
		sess = &models.Session{ID: req.SessionID, LastIntent: models.IntentUnknown}
	}

	result := h.orchestrator.Run(ctx, sess, req.Message)

	if err := h.sessions.Put(ctx, sess); err != nil {
		h.logger.Warn("failed to persist session",
			zap.String("sessionID", req.SessionID), zap.Error(err))
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:         result.Reply,
		BookingConfirmed: result.Intent == models.IntentConfirmation,
	})
}
