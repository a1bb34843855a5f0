package llm

import (
	"context"
	"fmt"
)

// Client sends a prompt to a hosted language model and returns raw text.
// Responses are untrusted: callers must parse and validate them.
type Client interface {
	// Complete sends a completion request and returns the model's text output.
	Complete(ctx context.Context, system, user string) (string, error)

	// Model returns the model identifier, used in cache keys.
	Model() string
}

// ModelCallError indicates the external model call failed after all retries
// or timed out. It is not retried further by callers.
type ModelCallError struct {
	Attempts int
	Err      error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}
