package intelligence

import "context"

// CompletionService answers general, non-scheduling messages. Implementations
// never fail the request: any transport or shape problem degrades to a fixed
// apologetic string.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) string
}
