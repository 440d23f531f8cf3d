package tools

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEchoTool(t *testing.T) {
	tool := NewEchoTool()

	assert.Equal(t, "echo", tool.Definition().Name)
	assert.Equal(t, domain.ToolResult{"output": "hello  world"}, tool.Invoke(context.Background(), "hello  world"))
	assert.Equal(t, domain.ToolResult{"output": ""}, tool.Invoke(context.Background(), ""))
}

func TestCalcTool(t *testing.T) {
	tool := NewCalcTool()

	tests := map[string]struct {
		argument string
		want     domain.ToolResult
	}{
		"success": {
			argument: "2+2",
			want:     domain.ToolResult{"result": float64(4)},
		},
		"division-by-zero": {
			argument: "1/0",
			want:     domain.ToolResult{"error": "division by zero"},
		},
		"process-access-is-rejected": {
			argument: "os.Exit(1)",
			want:     domain.ToolResult{"error": "unsupported expression *ast.CallExpr"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "calc", tool.Definition().Name)
			assert.Equal(t, tt.want, tool.Invoke(context.Background(), tt.argument))
		})
	}
}
