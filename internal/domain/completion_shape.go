package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CompletionShape is one of the decoded forms a completion can arrive in:
// TextShape, ChunksShape or ObjectShape.
type CompletionShape interface {
	isCompletionShape()
}

// TextShape is completion text that is already a plain string.
type TextShape string

// ChunksShape is completion text split into pieces, joined with newlines.
type ChunksShape []string

// ObjectShape is a decoded JSON object returned by a completion endpoint.
type ObjectShape map[string]any

func (TextShape) isCompletionShape()   {}
func (ChunksShape) isCompletionShape() {}
func (ObjectShape) isCompletionShape() {}

// NormalizeCompletion reduces any CompletionShape to text.
// Objects go through ExtractCompletionText and fall back to their JSON encoding.
func NormalizeCompletion(shape CompletionShape) string {
	switch s := shape.(type) {
	case TextShape:
		return string(s)
	case ChunksShape:
		return strings.Join(s, "\n")
	case ObjectShape:
		if text, ok := ExtractCompletionText(s); ok {
			return text
		}
		return stringify(map[string]any(s))
	default:
		return ""
	}
}

// ExtractCompletionText applies the response extraction rules in order:
// top-level "text", then choices[0].text, then choices[0].message.content.
// It reports false when none of the rules match.
func ExtractCompletionText(obj map[string]any) (string, bool) {
	if text, ok := obj["text"]; ok {
		return stringify(text), true
	}

	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}

	first, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	if text, ok := first["text"]; ok {
		return stringify(text), true
	}
	if message, ok := first["message"].(map[string]any); ok {
		return stringify(message["content"]), true
	}
	return "", false
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
