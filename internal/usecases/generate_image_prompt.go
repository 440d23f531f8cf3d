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

// GenerateImagePrompt defines the interface for turning a short description into an image prompt pair.
type GenerateImagePrompt interface {
	// Execute returns the prompt and negative prompt produced by the model.
	// Style and aspect are optional hints and may be empty.
	Execute(ctx context.Context, description, style, aspect string) (domain.ImagePrompt, error)
}

// GenerateImagePromptImpl is the implementation of GenerateImagePrompt.
type GenerateImagePromptImpl struct {
	client domain.CompletionClient
}

// NewGenerateImagePromptImpl creates a new instance of GenerateImagePromptImpl.
func NewGenerateImagePromptImpl(client domain.CompletionClient) GenerateImagePromptImpl {
	return GenerateImagePromptImpl{
		client: client,
	}
}

// Execute builds the image prompt, calls the model and splits its reply into two lines.
func (gip GenerateImagePromptImpl) Execute(ctx context.Context, description, style, aspect string) (domain.ImagePrompt, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(description) == "" {
		return domain.ImagePrompt{}, domain.NewValidationErr("description cannot be empty")
	}

	prompt := BuildImagePrompt(description, strings.TrimSpace(style), strings.TrimSpace(aspect))

	start := time.Now()
	text, err := gip.client.Generate(spanCtx, newCompletionRequest(prompt))
	RecordLLMCompletion(spanCtx, start, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ImagePrompt{}, fmt.Errorf("failed to generate image prompt: %w", err)
	}

	return domain.ParseImagePrompt(domain.TextShape(text)), nil
}

// InitGenerateImagePrompt initializes the GenerateImagePrompt use case.
type InitGenerateImagePrompt struct {
	Client domain.CompletionClient `resolve:""`
}

// Initialize registers GenerateImagePrompt in the dependency container.
func (i InitGenerateImagePrompt) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateImagePrompt](NewGenerateImagePromptImpl(i.Client))
	return ctx, nil
}
