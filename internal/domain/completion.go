package domain

import "context"

const (
	// DefaultMaxTokens is used when a CompletionRequest leaves MaxTokens unset.
	DefaultMaxTokens = 256
	// DefaultTemperature is used when a CompletionRequest leaves Temperature unset.
	DefaultTemperature = 0.2
)

// CompletionRequest is a single text-completion call.
type CompletionRequest struct {
	// Model overrides the client's configured model when not empty.
	Model       string
	Prompt      string
	MaxTokens   *int
	Temperature *float64
}

// CompletionClient generates text from a remote completion service.
type CompletionClient interface {
	// Generate sends the prompt and returns the normalized completion text.
	// Failures are returned as *CompletionErr.
	Generate(ctx context.Context, req CompletionRequest) (string, error)
}
