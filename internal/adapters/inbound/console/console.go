// Package console provides an interactive line-oriented front end for the agent.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/usecases"
	"github.com/google/uuid"
)

const (
	banner = "Groq Agent Ready. Modes: [agent] use tool/agent mode, [image] generate image prompt. " +
		"Type mode, then your input. ('quit' to exit)"
	prompt = "> "

	modeAgent = "agent"
	modeImage = "image"

	// imageFieldSeparator splits "description :: style :: aspect" in image mode.
	imageFieldSeparator = "::"
)

// AgentConsole reads commands from In and writes answers to Out until the input
// ends, the user types quit or exit, or the context is cancelled.
type AgentConsole struct {
	Logger                     *log.Logger                  `resolve:""`
	RunAgentUseCase            usecases.RunAgent            `resolve:""`
	GenerateImagePromptUseCase usecases.GenerateImagePrompt `resolve:""`
	In                         io.Reader
	Out                        io.Writer
}

// Run starts the read-eval-print loop.
func (c AgentConsole) Run(ctx context.Context) error {
	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	sessionID := uuid.NewString()
	c.Logger.Printf("AgentConsole: session %s started", sessionID)
	defer c.Logger.Printf("AgentConsole: session %s ended", sessionID)

	lines, scanErr := readLines(ctx, in)

	fmt.Fprintln(out, banner) //nolint:errcheck
	for {
		fmt.Fprint(out, prompt) //nolint:errcheck

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			return <-scanErr
		}

		trimmed := strings.TrimSpace(line)
		if isQuit(trimmed) {
			return nil
		}
		if trimmed == "" {
			continue
		}

		c.handle(ctx, out, trimmed)
	}
}

func (c AgentConsole) handle(ctx context.Context, out io.Writer, line string) {
	mode, input := splitMode(line)

	spanCtx, span := telemetry.StartNamed(ctx, "AgentConsole::"+mode)
	defer span.End()

	if mode == modeImage {
		description, style, aspect := splitImageFields(input)
		p, err := c.GenerateImagePromptUseCase.Execute(spanCtx, description, style, aspect)
		if err != nil {
			fmt.Fprintln(out, c.errorText(err)) //nolint:errcheck
			return
		}
		fmt.Fprintln(out, "Generated Prompt:") //nolint:errcheck
		fmt.Fprintln(out, p.Prompt)            //nolint:errcheck
		if p.Negative != "" {
			fmt.Fprintln(out, "Negative Prompt:") //nolint:errcheck
			fmt.Fprintln(out, p.Negative)         //nolint:errcheck
		}
		return
	}

	res, err := c.RunAgentUseCase.Execute(spanCtx, input)
	if err != nil {
		fmt.Fprintln(out, c.errorText(err)) //nolint:errcheck
		return
	}
	fmt.Fprintln(out, res.Output) //nolint:errcheck
}

// errorText renders a failure for the user. Completion failures keep the LLM_ERROR sentinel.
func (c AgentConsole) errorText(err error) string {
	var (
		completionErr *domain.CompletionErr
		validationErr *domain.ValidationErr
	)
	switch {
	case errors.As(err, &completionErr):
		return completionErr.SentinelText()
	case errors.As(err, &validationErr):
		return "ERROR: " + validationErr.Error()
	default:
		c.Logger.Printf("AgentConsole: unexpected error: %v", err)
		return "ERROR: " + err.Error()
	}
}

// splitMode reads an optional leading "agent" or "image" keyword.
// Any other first word is part of the agent input.
func splitMode(line string) (mode, input string) {
	first, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		first, rest = line[:i], line[i:]
	}
	switch strings.ToLower(first) {
	case modeImage:
		return modeImage, strings.TrimSpace(rest)
	case modeAgent:
		if strings.TrimSpace(rest) != "" {
			return modeAgent, strings.TrimSpace(rest)
		}
	}
	return modeAgent, line
}

func splitImageFields(input string) (description, style, aspect string) {
	fields := strings.SplitN(input, imageFieldSeparator, 3)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	description = fields[0]
	if len(fields) > 1 {
		style = fields[1]
	}
	if len(fields) > 2 {
		aspect = fields[2]
	}
	return description, style, aspect
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit")
}

// readLines scans in on its own goroutine so the loop can also watch ctx.
// The error channel receives the scanner result once lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			scanErr <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()

	return lines, scanErr
}
