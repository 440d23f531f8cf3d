package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolResult(t *testing.T) {
	tests := map[string]struct {
		result        ToolResult
		wantError     bool
		wantUnknown   bool
		wantRendering string
	}{
		"output": {
			result:        ToolResult{ToolResultKey_Output: "hi"},
			wantRendering: `{"output":"hi"}`,
		},
		"numeric-result": {
			result:        ToolResult{ToolResultKey_Result: float64(4)},
			wantRendering: `{"result":4}`,
		},
		"error": {
			result:        NewToolErrorResult("division by zero"),
			wantError:     true,
			wantRendering: `{"error":"division by zero"}`,
		},
		"unknown-tool": {
			result:        NewUnknownToolResult("search"),
			wantError:     true,
			wantUnknown:   true,
			wantRendering: `{"details":"Tool 'search' is not registered.","error":"unknown_tool"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantError, tt.result.IsError())
			assert.Equal(t, tt.wantUnknown, tt.result.IsUnknownTool())
			assert.Equal(t, tt.wantRendering, tt.result.String())
		})
	}
}
