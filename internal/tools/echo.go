package tools

import (
	"context"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
)

// EchoTool returns its argument unchanged.
type EchoTool struct{}

// NewEchoTool creates a new instance of EchoTool.
func NewEchoTool() EchoTool {
	return EchoTool{}
}

// Definition returns the tool definition for EchoTool.
func (t EchoTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "echo",
		Description: "Echoes the input back.",
	}
}

// Invoke returns {"output": argument}.
func (t EchoTool) Invoke(_ context.Context, argument string) domain.ToolResult {
	return domain.ToolResult{domain.ToolResultKey_Output: argument}
}
