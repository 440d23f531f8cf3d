package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RunAgent defines the interface for a single agent round-trip.
type RunAgent interface {
	// Execute sends the agent prompt for input and interprets the completion.
	// Completion failures are returned as errors wrapping *domain.CompletionErr;
	// every other outcome, including a malformed directive, is an AgentResult.
	Execute(ctx context.Context, input string) (domain.AgentResult, error)
}

// RunAgentImpl is the implementation of RunAgent.
type RunAgentImpl struct {
	client   domain.CompletionClient
	registry domain.ToolRegistry
}

// NewRunAgentImpl creates a new instance of RunAgentImpl.
func NewRunAgentImpl(client domain.CompletionClient, registry domain.ToolRegistry) RunAgentImpl {
	return RunAgentImpl{
		client:   client,
		registry: registry,
	}
}

// Execute runs one prompt, completion and dispatch cycle.
func (ra RunAgentImpl) Execute(ctx context.Context, input string) (domain.AgentResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(input) == "" {
		return domain.AgentResult{}, domain.NewValidationErr("input cannot be empty")
	}

	prompt := BuildAgentPrompt(ra.registry.List(), input)

	start := time.Now()
	text, err := ra.client.Generate(spanCtx, newCompletionRequest(prompt))
	RecordLLMCompletion(spanCtx, start, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentResult{}, fmt.Errorf("failed to generate agent completion: %w", err)
	}

	directive, err := domain.ParseDirective(text)
	if err != nil {
		span.AddEvent("Completion carried a malformed directive")
		return domain.AgentResult{
			Directive: domain.DirectiveKind_Invalid,
			Output:    fmt.Sprintf("ERROR parsing action: %s", err),
		}, nil
	}
	span.SetAttributes(attribute.String("agent.directive", string(directive.Kind())))

	switch d := directive.(type) {
	case domain.ActionDirective:
		result := ra.registry.Dispatch(spanCtx, d.ToolName, d.Argument)
		RecordToolDispatch(spanCtx, d.ToolName, result)

		output := "TOOL_RESULT: " + result.String()
		if result.IsUnknownTool() {
			output = fmt.Sprintf("Unknown tool: %s", d.ToolName)
		}
		return domain.AgentResult{
			Directive:  domain.DirectiveKind_Action,
			Output:     output,
			Tool:       d.ToolName,
			ToolResult: result,
		}, nil

	case domain.FinalDirective:
		return domain.AgentResult{
			Directive: domain.DirectiveKind_Final,
			Output:    d.Answer,
		}, nil

	default:
		return domain.AgentResult{
			Directive: domain.DirectiveKind_Raw,
			Output:    text,
		}, nil
	}
}

// InitRunAgent initializes the RunAgent use case.
type InitRunAgent struct {
	Client   domain.CompletionClient `resolve:""`
	Registry domain.ToolRegistry     `resolve:""`
}

// Initialize registers RunAgent in the dependency container.
func (i InitRunAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RunAgent](NewRunAgentImpl(i.Client, i.Registry))
	return ctx, nil
}
