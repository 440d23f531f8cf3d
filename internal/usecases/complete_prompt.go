package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CompletePrompt sends a prompt as-is and returns the completion text.
type CompletePrompt interface {
	Execute(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// CompletePromptImpl is the implementation of CompletePrompt.
type CompletePromptImpl struct {
	client domain.CompletionClient
}

// NewCompletePromptImpl creates a new instance of CompletePromptImpl.
func NewCompletePromptImpl(client domain.CompletionClient) CompletePromptImpl {
	return CompletePromptImpl{
		client: client,
	}
}

// Execute fills unset generation parameters with the defaults and performs a single call.
func (cp CompletePromptImpl) Execute(ctx context.Context, req domain.CompletionRequest) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(req.Prompt) == "" {
		return "", domain.NewValidationErr("prompt cannot be empty")
	}
	if req.MaxTokens != nil && *req.MaxTokens <= 0 {
		return "", domain.NewValidationErr("max_tokens must be greater than zero")
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		return "", domain.NewValidationErr("temperature must be between 0 and 2")
	}

	start := time.Now()
	text, err := cp.client.Generate(spanCtx, withDefaults(req))
	RecordLLMCompletion(spanCtx, start, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("failed to complete prompt: %w", err)
	}

	return text, nil
}

// InitCompletePrompt initializes the CompletePrompt use case.
type InitCompletePrompt struct {
	Client domain.CompletionClient `resolve:""`
}

// Initialize registers CompletePrompt in the dependency container.
func (i InitCompletePrompt) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompletePrompt](NewCompletePromptImpl(i.Client))
	return ctx, nil
}
