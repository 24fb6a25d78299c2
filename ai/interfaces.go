package ai

import "context"

// TextGenerator invokes a hosted text-generation model with a prompt and
// bounded sampling parameters, returning the raw reply text.
// Implementations must be thread-safe for concurrent use.
type TextGenerator interface {
	// GenerateText submits the prompt and returns the model's reply.
	// maxTokens bounds the output length; temperature controls sampling
	// (lower values lean deterministic).
	// Returns an error if the invocation fails for any reason; callers are
	// expected to map failures to their own fallback values.
	GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}
