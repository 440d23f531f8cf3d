package usecases

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

type agentPromptTemplate struct {
	ToolLine string `yaml:"tool_line"`
	Template string `yaml:"template"`
}

type imagePromptTemplate struct {
	Instructions    []string `yaml:"instructions"`
	DescriptionLine string   `yaml:"description_line"`
	StyleLine       string   `yaml:"style_line"`
	AspectLine      string   `yaml:"aspect_line"`
}

var (
	agentPrompt = mustLoadPrompt[agentPromptTemplate]("prompts/agent.yml")
	imagePrompt = mustLoadPrompt[imagePromptTemplate]("prompts/image.yml")
)

// mustLoadPrompt decodes an embedded prompt file. The files are compiled into the
// binary, so a decoding failure is a programming error.
func mustLoadPrompt[T any](name string) T {
	file, err := promptFiles.Open(name)
	if err != nil {
		panic(fmt.Errorf("failed to open prompt %s: %w", name, err))
	}
	defer file.Close() //nolint:errcheck

	var tmpl T
	if err := yaml.NewDecoder(file).Decode(&tmpl); err != nil {
		panic(fmt.Errorf("failed to decode prompt %s: %w", name, err))
	}
	return tmpl
}

// BuildAgentPrompt lists the available tools and asks the model to answer with
// an ACTION or a FINAL directive.
func BuildAgentPrompt(tools []domain.ToolDefinition, userInput string) string {
	lines := make([]string, 0, len(tools))
	for _, tool := range tools {
		lines = append(lines, fmt.Sprintf(agentPrompt.ToolLine, tool.Name, tool.Description))
	}
	return fmt.Sprintf(agentPrompt.Template, strings.Join(lines, "\n"), userInput)
}

// BuildImagePrompt asks the model for exactly two lines: the image prompt and the
// negative prompt. The description is quoted verbatim; style and aspect are appended
// only when not empty.
func BuildImagePrompt(description, style, aspect string) string {
	parts := make([]string, 0, len(imagePrompt.Instructions)+3)
	parts = append(parts, imagePrompt.Instructions...)
	parts = append(parts, fmt.Sprintf(imagePrompt.DescriptionLine, description))

	if style != "" {
		parts = append(parts, fmt.Sprintf(imagePrompt.StyleLine, style))
	}
	if aspect != "" {
		parts = append(parts, fmt.Sprintf(imagePrompt.AspectLine, aspect))
	}

	return strings.Join(parts, "\n")
}
