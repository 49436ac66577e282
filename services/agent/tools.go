package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tailortalk/services/calendar"
)

const (
	dayLayout  = "Monday, January 02"
	slotLayout = "Monday, January 02 at 03:04 PM"
	timeLayout = "03:04 PM"
)

// Toolbox executes the calendar actions requested by the processor. Now is
// injectable so slot arithmetic is testable.
type Toolbox struct {
	Calendar calendar.Service
	Logger   *zap.Logger
	Now      func() time.Time
}

func (t *Toolbox) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Execute runs the requested action. Failures never escape: they are
// converted to user-facing error strings so the turn always completes.
func (t *Toolbox) Execute(ctx context.Context, req *ToolRequest) string {
	switch req.Action {
	case ActionSuggestSlots:
		return t.suggestSlots(req.Input)
	case ActionListEvents:
		text, err := t.checkAvailability(ctx, req.Input)
		if err != nil {
			t.Logger.Warn("availability check failed", zap.Error(err))
			return fmt.Sprintf("Error checking calendar: %v", err)
		}
		return text
	case ActionCreateEvent:
		text, err := t.bookAppointment(ctx)
		if err != nil {
			t.Logger.Warn("booking failed", zap.Error(err))
			return fmt.Sprintf("Error booking appointment: %v", err)
		}
		return text
	default:
		return "I'm ready to help with your scheduling needs!"
	}
}

// suggestSlots picks one of three fixed 3-slot templates for the following
// day based on keyword presence in the preference text.
func (t *Toolbox) suggestSlots(preferences string) string {
	lower := strings.ToLower(preferences)
	base := t.now().AddDate(0, 0, 1)

	var hours [3]int
	switch {
	case strings.Contains(lower, "afternoon"):
		hours = [3]int{14, 15, 16}
	case strings.Contains(lower, "morning"):
		hours = [3]int{9, 10, 11}
	default:
		hours = [3]int{11, 14, 16}
	}

	var sb strings.Builder
	sb.WriteString("Here are some available time slots:\n")
	for i, h := range hours {
		slot := time.Date(base.Year(), base.Month(), base.Day(), h, 0, 0, 0, base.Location())
		fmt.Fprintf(&sb, "%d. %s", i+1, slot.Format(slotLayout))
		if i < len(hours)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// checkAvailability lists events over a 12-hour window starting at the day
// referenced by the utterance (tomorrow when nothing is recognized).
func (t *Toolbox) checkAvailability(ctx context.Context, dateText string) (string, error) {
	start := t.resolveDay(dateText)
	end := start.Add(12 * time.Hour)

	events, err := t.Calendar.ListEvents(ctx, start, end)
	if err != nil {
		return "", err
	}

	if len(events) == 0 {
		return fmt.Sprintf("No existing events found for %s. You have full availability!", start.Format(dayLayout)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Existing events for %s:\n", start.Format(dayLayout))
	for i, ev := range events {
		fmt.Fprintf(&sb, "- %s: %s - %s", ev.Title, ev.Start.Format(timeLayout), ev.End.Format(timeLayout))
		if i < len(events)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// bookAppointment creates a fixed one-hour placeholder meeting at 2 PM the
// following day and reports the provider-assigned id.
func (t *Toolbox) bookAppointment(ctx context.Context) (string, error) {
	tomorrow := t.now().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 0, 0, 0, tomorrow.Location())
	end := start.Add(time.Hour)

	event, err := t.Calendar.CreateEvent(ctx, "Scheduled Meeting", start, end, "Meeting booked through TailorTalk agent")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Appointment booked successfully!\nTitle: %s\nTime: %s - %s\nEvent ID: %s",
		event.Title, start.Format(slotLayout), end.Format(timeLayout), event.ID), nil
}

// resolveDay maps a relative day reference onto a concrete start time.
func (t *Toolbox) resolveDay(text string) time.Time {
	lower := strings.ToLower(text)
	now := t.now()

	switch {
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1)
	case strings.Contains(lower, "today"):
		return now
	case strings.Contains(lower, "friday"):
		daysAhead := (int(time.Friday) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7
		}
		return now.AddDate(0, 0, daysAhead)
	default:
		return now.AddDate(0, 0, 1)
	}
}
