package console

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAgentConsole_Run(t *testing.T) {
	tests := map[string]struct {
		input           string
		setExpectations func(*usecases.MockRunAgent, *usecases.MockGenerateImagePrompt)
		expectedOutput  []string
		notExpected     []string
	}{
		"agent-default-mode": {
			input: "what is 2+2?\nquit\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				agent.EXPECT().
					Execute(mock.Anything, "what is 2+2?").
					Return(domain.AgentResult{Directive: domain.DirectiveKind_Action, Output: `TOOL_RESULT: {"result":4}`}, nil).
					Once()
			},
			expectedOutput: []string{"Groq Agent Ready.", `TOOL_RESULT: {"result":4}`},
		},
		"explicit-agent-keyword": {
			input: "Agent tell me a joke\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				agent.EXPECT().
					Execute(mock.Anything, "tell me a joke").
					Return(domain.AgentResult{Directive: domain.DirectiveKind_Final, Output: "No."}, nil).
					Once()
			},
			expectedOutput: []string{"No."},
		},
		"image-with-style-and-aspect": {
			input: "image a lonely lighthouse at sunset :: cinematic :: 16:9\nexit\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				image.EXPECT().
					Execute(mock.Anything, "a lonely lighthouse at sunset", "cinematic", "16:9").
					Return(domain.ImagePrompt{Prompt: "A lighthouse at dusk", Negative: "Negative: text"}, nil).
					Once()
			},
			expectedOutput: []string{"Generated Prompt:\nA lighthouse at dusk\n", "Negative Prompt:\nNegative: text\n"},
		},
		"image-without-negative": {
			input: "IMAGE a cat\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				image.EXPECT().
					Execute(mock.Anything, "a cat", "", "").
					Return(domain.ImagePrompt{Prompt: "A cat"}, nil).
					Once()
			},
			expectedOutput: []string{"Generated Prompt:\nA cat\n"},
			notExpected:    []string{"Negative Prompt:"},
		},
		"blank-lines-skipped-and-quit-stops": {
			input:          "\n   \nQUIT\nwhat is 2+2?\n",
			expectedOutput: []string{"Groq Agent Ready."},
		},
		"completion-error-prints-sentinel": {
			input: "hello\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				agent.EXPECT().
					Execute(mock.Anything, "hello").
					Return(domain.AgentResult{}, domain.NewCompletionErr(domain.CompletionErrKind_Transport, errors.New("connection refused"))).
					Once()
			},
			expectedOutput: []string{"LLM_ERROR: TransportError: connection refused"},
		},
		"validation-error": {
			input: "image\n",
			setExpectations: func(agent *usecases.MockRunAgent, image *usecases.MockGenerateImagePrompt) {
				image.EXPECT().
					Execute(mock.Anything, "", "", "").
					Return(domain.ImagePrompt{}, domain.NewValidationErr("description cannot be empty")).
					Once()
			},
			expectedOutput: []string{"ERROR: description cannot be empty"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			agent := usecases.NewMockRunAgent(t)
			image := usecases.NewMockGenerateImagePrompt(t)
			if tt.setExpectations != nil {
				tt.setExpectations(agent, image)
			}

			out := &strings.Builder{}
			c := AgentConsole{
				Logger:                     log.New(io.Discard, "", 0),
				RunAgentUseCase:            agent,
				GenerateImagePromptUseCase: image,
				In:                         strings.NewReader(tt.input),
				Out:                        out,
			}

			err := c.Run(context.Background())
			assert.NoError(t, err)

			for _, expected := range tt.expectedOutput {
				assert.Contains(t, out.String(), expected)
			}
			for _, unexpected := range tt.notExpected {
				assert.NotContains(t, out.String(), unexpected)
			}
		})
	}
}

func TestAgentConsole_Run_ContextCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close() //nolint:errcheck

	c := AgentConsole{
		Logger: log.New(io.Discard, "", 0),
		In:     reader,
		Out:    io.Discard,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop after context cancellation")
	}
}

func TestSplitImageFields(t *testing.T) {
	tests := map[string]struct {
		input                      string
		description, style, aspect string
	}{
		"description-only": {input: "a cat", description: "a cat"},
		"with-style":       {input: "a cat :: watercolor", description: "a cat", style: "watercolor"},
		"with-all":         {input: "a cat :: watercolor :: 1:1", description: "a cat", style: "watercolor", aspect: "1:1"},
		"extra-separators": {input: "a :: b :: c :: d", description: "a", style: "b", aspect: "c :: d"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			description, style, aspect := splitImageFields(tt.input)
			assert.Equal(t, tt.description, description)
			assert.Equal(t, tt.style, style)
			assert.Equal(t, tt.aspect, aspect)
		})
	}
}

func TestSplitMode(t *testing.T) {
	tests := map[string]struct {
		line      string
		wantMode  string
		wantInput string
	}{
		"image-space":        {line: "image a cat", wantMode: "image", wantInput: "a cat"},
		"image-tab":          {line: "image\tfoo", wantMode: "image", wantInput: "foo"},
		"image-only":         {line: "image", wantMode: "image", wantInput: ""},
		"agent-mixed-case":   {line: "Agent hi", wantMode: "agent", wantInput: "hi"},
		"agent-tab":          {line: "agent\t what is 2+2", wantMode: "agent", wantInput: "what is 2+2"},
		"agent-keyword-only": {line: "agent", wantMode: "agent", wantInput: "agent"},
		"no-keyword":         {line: "what is the time", wantMode: "agent", wantInput: "what is the time"},
		"keyword-prefix":     {line: "imagery of cats", wantMode: "agent", wantInput: "imagery of cats"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mode, input := splitMode(tt.line)
			assert.Equal(t, tt.wantMode, mode)
			assert.Equal(t, tt.wantInput, input)
		})
	}
}
