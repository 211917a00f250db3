// Package llm wraps the external text-generation capability behind a small
// provider-agnostic interface.
package llm

import (
	"context"
)

// TextGenerator is the generation capability the adapter drives. Use this
// interface for dependency injection to enable mocking in tests.
type TextGenerator interface {
	// Generate produces free text for the given prompt.
	Generate(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Ensure both provider clients implement TextGenerator at compile time.
var (
	_ TextGenerator = (*Client)(nil)
	_ TextGenerator = (*AnthropicClient)(nil)
)
