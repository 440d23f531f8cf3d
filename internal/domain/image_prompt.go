package domain

import "strings"

var lineBreakNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ImagePrompt is a prompt for an image-generation model and the things it should avoid.
type ImagePrompt struct {
	Prompt   string `json:"prompt"`
	Negative string `json:"negative"`
}

// ParseImagePrompt splits a completion into its first two non-empty trimmed lines.
// Line breaks may be \n, \r\n or a lone \r. A missing line becomes an empty
// string; lines beyond the second are ignored.
func ParseImagePrompt(shape CompletionShape) ImagePrompt {
	var lines []string
	for line := range strings.Lines(lineBreakNormalizer.Replace(NormalizeCompletion(shape))) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}

	var p ImagePrompt
	if len(lines) > 0 {
		p.Prompt = lines[0]
	}
	if len(lines) > 1 {
		p.Negative = lines[1]
	}
	return p
}
