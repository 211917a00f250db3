package llm

import (
	"context"
)

// MockTextGenerator is a configurable mock for testing generation paths.
// Set the function field to control behavior in tests.
type MockTextGenerator struct {
	// GenerateFunc is called when Generate is invoked.
	// If nil, responses are popped from Responses in order.
	GenerateFunc func(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// Responses is a queue consumed by Generate when GenerateFunc is nil.
	// The last response repeats once the queue is exhausted.
	Responses []string

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// GenerateCalls counts invocations for verification.
	GenerateCalls int
}

// NewMockTextGenerator creates a new mock with sensible defaults.
func NewMockTextGenerator(responses ...string) *MockTextGenerator {
	return &MockTextGenerator{
		Responses: responses,
		ModelName: "mock-model",
	}
}

// Generate implements TextGenerator.
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error) {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, systemMessage, temperature)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	idx := m.GenerateCalls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// Model implements TextGenerator.
func (m *MockTextGenerator) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// Reset clears call tracking.
func (m *MockTextGenerator) Reset() {
	m.GenerateCalls = 0
}

// Ensure MockTextGenerator implements TextGenerator at compile time.
var _ TextGenerator = (*MockTextGenerator)(nil)
