package agent

import (
	"strings"

	"tailortalk/models"
)

// Keyword sets for intent classification. Matching is case-insensitive
// substring membership, first match wins in the order booking, availability,
// confirmation. No negation, no disambiguation, no confidence score.
var (
	bookingKeywords      = []string{"schedule", "book", "appointment", "meeting"}
	availabilityKeywords = []string{"available", "free", "check"}
	confirmationKeywords = []string{"confirm", "yes", "okay"}
)

// relativeDayWords are the day references the booking branch reacts to.
var relativeDayWords = []string{
	"today", "tomorrow",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"next week",
}

// Classify maps a raw utterance to an intent. Deterministic and pure.
func Classify(text string) models.Intent {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, bookingKeywords):
		return models.IntentBooking
	case containsAny(lower, availabilityKeywords):
		return models.IntentAvailability
	case containsAny(lower, confirmationKeywords):
		return models.IntentConfirmation
	default:
		return models.IntentUnknown
	}
}

// MentionsScheduling reports whether the message carries any scheduling,
// availability or confirmation vocabulary. The chat endpoint routes such
// messages to the agent instead of the completion fallback.
func MentionsScheduling(text string) bool {
	lower := strings.ToLower(text)
	return containsAny(lower, bookingKeywords) ||
		containsAny(lower, availabilityKeywords) ||
		containsAny(lower, confirmationKeywords)
}

func mentionsRelativeDay(lower string) bool {
	return containsAny(lower, relativeDayWords)
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
