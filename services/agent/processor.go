package agent

import (
	"strings"

	"tailortalk/models"
)

// ToolAction identifies a calendar-side action requested by the processor.
type ToolAction string

const (
	ActionSuggestSlots ToolAction = "suggestSlots"
	ActionListEvents   ToolAction = "listEvents"
	ActionCreateEvent  ToolAction = "createEvent"
)

// ToolRequest asks the orchestrator to run a calendar action before the turn
// completes. Input is the user utterance feeding the tool.
type ToolRequest struct {
	Action ToolAction
	Input  string
}

// stepSuggested marks that slot suggestions were already made this session.
const stepSuggested = "suggested"

// Processor turns a classified utterance into a reply and an optional tool
// request. All state it consults lives on the session.
type Processor struct{}

// Process implements the per-intent policy table. It mutates only the
// session's LastIntent and PendingStep fields.
func (p *Processor) Process(sess *models.Session, intent models.Intent, text string) (string, *ToolRequest) {
	lower := strings.ToLower(text)
	sess.LastIntent = intent

	switch intent {
	case models.IntentBooking:
		if !mentionsRelativeDay(lower) {
			return "I'll help you schedule that meeting. Could you tell me your preferred date and time?", nil
		}

		var reply string
		switch {
		case strings.Contains(lower, "tomorrow afternoon"):
			reply = "I'd be happy to help you schedule a call for tomorrow afternoon! Let me check what times are available."
		case strings.Contains(lower, "friday"):
			reply = "Let me check your availability for this Friday."
		default:
			reply = "Let me check what times are available for that day."
		}

		if sess.PendingStep == stepSuggested {
			return reply, nil
		}
		sess.PendingStep = stepSuggested
		return reply, &ToolRequest{Action: ActionSuggestSlots, Input: text}

	case models.IntentAvailability:
		return "Let me check your calendar availability.", &ToolRequest{Action: ActionListEvents, Input: text}

	case models.IntentConfirmation:
		return "Great! Let me book that appointment for you.", &ToolRequest{Action: ActionCreateEvent, Input: text}

	default:
		return "Hello! I'm here to help you schedule appointments. What would you like to book?", nil
	}
}
