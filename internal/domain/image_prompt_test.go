package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImagePrompt(t *testing.T) {
	tests := map[string]struct {
		shape CompletionShape
		want  ImagePrompt
	}{
		"two-lines": {
			shape: TextShape("A photo of a cat\nNegative: blurry, text"),
			want:  ImagePrompt{Prompt: "A photo of a cat", Negative: "Negative: blurry, text"},
		},
		"empty-text": {
			shape: TextShape(""),
			want:  ImagePrompt{},
		},
		"only-blank-lines": {
			shape: TextShape("\n   \n\t\n"),
			want:  ImagePrompt{},
		},
		"single-line": {
			shape: TextShape("  A lighthouse at dusk  "),
			want:  ImagePrompt{Prompt: "A lighthouse at dusk"},
		},
		"extra-lines-ignored-and-blank-lines-skipped": {
			shape: TextShape("\nfirst\r\n\n second \nthird\n"),
			want:  ImagePrompt{Prompt: "first", Negative: "second"},
		},
		"carriage-return-separator": {
			shape: TextShape("A photo of a cat\rNegative: blurry"),
			want:  ImagePrompt{Prompt: "A photo of a cat", Negative: "Negative: blurry"},
		},
		"crlf-separator": {
			shape: TextShape("A photo of a cat\r\nNegative: blurry\r\nextra"),
			want:  ImagePrompt{Prompt: "A photo of a cat", Negative: "Negative: blurry"},
		},
		"chunks": {
			shape: ChunksShape{"prompt line", "negative line"},
			want:  ImagePrompt{Prompt: "prompt line", Negative: "negative line"},
		},
		"structured-object": {
			shape: ObjectShape{"choices": []any{
				map[string]any{"message": map[string]any{"content": "p\nn"}},
			}},
			want: ImagePrompt{Prompt: "p", Negative: "n"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseImagePrompt(tt.shape))
		})
	}
}
