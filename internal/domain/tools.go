package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// Result keys used by tools.
const (
	ToolResultKey_Output  = "output"
	ToolResultKey_Result  = "result"
	ToolResultKey_Error   = "error"
	ToolResultKey_Details = "details"
)

// ToolErr_UnknownTool is the error value of a dispatch to an unregistered tool.
const ToolErr_UnknownTool = "unknown_tool"

// ToolDefinition describes a tool to the model.
type ToolDefinition struct {
	Name        string
	Description string
}

// ToolResult is the structured outcome of a tool invocation.
type ToolResult map[string]any

// NewToolErrorResult creates a result carrying an error message.
func NewToolErrorResult(message string) ToolResult {
	return ToolResult{ToolResultKey_Error: message}
}

// NewUnknownToolResult creates the result of a dispatch to an unregistered tool.
func NewUnknownToolResult(name string) ToolResult {
	return ToolResult{
		ToolResultKey_Error:   ToolErr_UnknownTool,
		ToolResultKey_Details: fmt.Sprintf("Tool '%s' is not registered.", name),
	}
}

// IsError reports whether the result carries an error.
func (r ToolResult) IsError() bool {
	_, ok := r[ToolResultKey_Error]
	return ok
}

// IsUnknownTool reports whether the result comes from a dispatch to an unregistered tool.
func (r ToolResult) IsUnknownTool() bool {
	return r[ToolResultKey_Error] == ToolErr_UnknownTool
}

// String renders the result as JSON.
func (r ToolResult) String() string {
	b, err := json.Marshal(map[string]any(r))
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(b)
}

// Tool is a named capability the agent can invoke with raw argument text.
type Tool interface {
	Definition() ToolDefinition
	Invoke(ctx context.Context, argument string) ToolResult
}

// ToolRegistry resolves tools by exact name.
type ToolRegistry interface {
	// Dispatch invokes the named tool. Unknown names produce an unknown-tool result.
	Dispatch(ctx context.Context, name, argument string) ToolResult
	// List returns the definitions of all registered tools.
	List() []ToolDefinition
}
