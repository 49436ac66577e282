package agent

import (
	"context"
	"strings"

	"tailortalk/models"
)

// orchestrator states. AGENT runs the turn processor, ACTION executes the
// requested calendar tool, DONE is terminal. ACTION always loops back to
// AGENT; the processor never requests chained actions, so in practice each
// inbound message runs the action node at most once.
type state int

const (
	stateAgent state = iota
	stateAction
	stateDone
)

// Orchestrator drives the two-node agent/action loop for one inbound message.
type Orchestrator struct {
	Processor *Processor
	Tools     *Toolbox
}

// Result is the outcome of one orchestrated turn.
type Result struct {
	Reply  string
	Intent models.Intent
}

// Run processes a single user message against the session: classify, produce
// a reply, conditionally execute the requested tool, and terminate. Tool
// failures surface as reply text, never as an error; the loop always reaches
// DONE. The result joins every assistant turn produced during the run.
func (o *Orchestrator) Run(ctx context.Context, sess *models.Session, message string) Result {
	sess.Append("user", message)

	intent := Classify(message)
	var replies []string

	var pending *ToolRequest
	acted := false

	for current := stateAgent; current != stateDone; {
		switch current {
		case stateAgent:
			if acted {
				// Re-entry after the action node: the tool result was the
				// last word, nothing further to process.
				current = stateDone
				break
			}
			reply, req := o.Processor.Process(sess, intent, message)
			sess.Append("assistant", reply)
			replies = append(replies, reply)
			if req == nil {
				current = stateDone
				break
			}
			pending = req
			current = stateAction

		case stateAction:
			result := o.Tools.Execute(ctx, pending)
			sess.Append("assistant", result)
			replies = append(replies, result)
			pending = nil
			acted = true
			current = stateAgent
		}
	}

	return Result{Reply: strings.Join(replies, "\n\n"), Intent: intent}
}
