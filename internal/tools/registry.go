package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// Registry is an immutable name-to-tool mapping built once at startup.
// It is safe for concurrent use.
type Registry struct {
	tools map[string]domain.Tool
}

// NewRegistry creates a Registry. Tool names must be non-empty and unique;
// a duplicate name is rejected rather than overwritten.
func NewRegistry(tools ...domain.Tool) (Registry, error) {
	toolMap := make(map[string]domain.Tool, len(tools))
	for _, tool := range tools {
		name := tool.Definition().Name
		if name == "" {
			return Registry{}, domain.NewValidationErr("tool name cannot be empty")
		}
		if _, exists := toolMap[name]; exists {
			return Registry{}, domain.NewValidationErr(fmt.Sprintf("tool '%s' is already registered", name))
		}
		toolMap[name] = tool
	}
	return Registry{tools: toolMap}, nil
}

// Dispatch invokes the tool registered under name with the raw argument text.
func (r Registry) Dispatch(ctx context.Context, name, argument string) domain.ToolResult {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("tool.name", name))

	tool, exists := r.tools[name]
	if !exists {
		return domain.NewUnknownToolResult(name)
	}

	return tool.Invoke(spanCtx, argument)
}

// List returns the definitions of all registered tools sorted by name.
func (r Registry) List() []domain.ToolDefinition {
	res := make([]domain.ToolDefinition, 0, len(r.tools))
	for _, tool := range r.tools {
		res = append(res, tool.Definition())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

var _ domain.ToolRegistry = Registry{}

// InitToolRegistry registers the built-in tools.
type InitToolRegistry struct{}

// Initialize builds the registry and registers it as domain.ToolRegistry.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry, err := NewRegistry(
		NewEchoTool(),
		NewCalcTool(),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to build tool registry: %w", err)
	}

	depend.Register[domain.ToolRegistry](registry)
	return ctx, nil
}
