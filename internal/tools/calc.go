package tools

import (
	"context"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
)

// CalcTool evaluates arithmetic expressions.
type CalcTool struct{}

// NewCalcTool creates a new instance of CalcTool.
func NewCalcTool() CalcTool {
	return CalcTool{}
}

// Definition returns the tool definition for CalcTool.
func (t CalcTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Name:        "calc",
		Description: "Evaluates an arithmetic expression with numbers, + - * / and parentheses.",
	}
}

// Invoke returns {"result": value} or {"error": message}.
func (t CalcTool) Invoke(_ context.Context, argument string) domain.ToolResult {
	value, err := EvalArithmetic(argument)
	if err != nil {
		return domain.NewToolErrorResult(err.Error())
	}
	return domain.ToolResult{domain.ToolResultKey_Result: value}
}
