package models

// Intent is the coarse classification of a user message.
type Intent string

const (
	IntentBooking      Intent = "booking"
	IntentAvailability Intent = "availability"
	IntentConfirmation Intent = "confirmation"
	IntentUnknown      Intent = "unknown"
)

// ChatMessage is the payload coming from the frontend into /chat.
type ChatMessage struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response         string `json:"response"`
	BookingConfirmed bool   `json:"booking_confirmed"`
}

// ConversationTurn is one user message or one assistant reply within a session.
type ConversationTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Session holds per-conversation state for the scheduling agent. Turns are
// append-only; concurrent requests for the same session id are not
// synchronized and may interleave.
type Session struct {
	ID          string             `json:"id"`
	Turns       []ConversationTurn `json:"turns"`
	LastIntent  Intent             `json:"lastIntent"`
	PendingStep string             `json:"pendingStep"`
}

// Append records a turn on the session.
func (s *Session) Append(role, text string) {
	s.Turns = append(s.Turns, ConversationTurn{Role: role, Text: text})
}
