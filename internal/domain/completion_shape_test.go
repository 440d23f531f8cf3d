package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCompletionText(t *testing.T) {
	tests := map[string]struct {
		obj      map[string]any
		wantText string
		wantOK   bool
	}{
		"top-level-text": {
			obj:      map[string]any{"text": "hello"},
			wantText: "hello",
			wantOK:   true,
		},
		"top-level-text-wins-over-choices": {
			obj: map[string]any{
				"text":    "top",
				"choices": []any{map[string]any{"text": "choice"}},
			},
			wantText: "top",
			wantOK:   true,
		},
		"choice-text": {
			obj:      map[string]any{"choices": []any{map[string]any{"text": "X"}}},
			wantText: "X",
			wantOK:   true,
		},
		"choice-message-content": {
			obj: map[string]any{"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": "Y"}},
			}},
			wantText: "Y",
			wantOK:   true,
		},
		"choice-message-without-content": {
			obj:      map[string]any{"choices": []any{map[string]any{"message": map[string]any{}}}},
			wantText: "",
			wantOK:   true,
		},
		"non-string-text-is-encoded": {
			obj:      map[string]any{"text": float64(42)},
			wantText: "42",
			wantOK:   true,
		},
		"empty-choices": {
			obj:    map[string]any{"choices": []any{}},
			wantOK: false,
		},
		"choice-not-an-object": {
			obj:    map[string]any{"choices": []any{"plain"}},
			wantOK: false,
		},
		"unknown-shape": {
			obj:    map[string]any{"result": "nope"},
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractCompletionText(tt.obj)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, got)
		})
	}
}

func TestNormalizeCompletion(t *testing.T) {
	tests := map[string]struct {
		shape CompletionShape
		want  string
	}{
		"text":               {shape: TextShape("plain"), want: "plain"},
		"chunks":             {shape: ChunksShape{"a", "b"}, want: "a\nb"},
		"object-text":        {shape: ObjectShape{"text": "from object"}, want: "from object"},
		"object-fallback":    {shape: ObjectShape{"other": "x"}, want: `{"other":"x"}`},
		"nil-shape":          {shape: nil, want: ""},
		"empty-chunks":       {shape: ChunksShape{}, want: ""},
		"object-message":     {shape: ObjectShape{"choices": []any{map[string]any{"message": map[string]any{"content": "m"}}}}, want: "m"},
		"object-choice-text": {shape: ObjectShape{"choices": []any{map[string]any{"text": "c"}}}, want: "c"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCompletion(tt.shape))
		})
	}
}
