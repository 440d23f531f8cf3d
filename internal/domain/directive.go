package domain

import (
	"strings"
	"unicode"
)

const (
	actionPrefix = "ACTION:"
	finalPrefix  = "FINAL:"
)

// DirectiveKind names the variant of a Directive.
type DirectiveKind string

const (
	DirectiveKind_Action  DirectiveKind = "action"
	DirectiveKind_Final   DirectiveKind = "final"
	DirectiveKind_Raw     DirectiveKind = "raw"
	DirectiveKind_Invalid DirectiveKind = "invalid"
)

// Directive is the intent extracted from completion text:
// an ActionDirective, a FinalDirective or a RawDirective.
type Directive interface {
	Kind() DirectiveKind
}

// ActionDirective asks for a tool to be invoked with the raw argument text.
type ActionDirective struct {
	ToolName string
	Argument string
}

// FinalDirective carries the final answer.
type FinalDirective struct {
	Answer string
}

// RawDirective is completion text with no recognized prefix.
type RawDirective struct {
	Text string
}

func (ActionDirective) Kind() DirectiveKind { return DirectiveKind_Action }
func (FinalDirective) Kind() DirectiveKind  { return DirectiveKind_Final }
func (RawDirective) Kind() DirectiveKind    { return DirectiveKind_Raw }

// ParseDirective interprets completion text.
//
// The prefix match is case-insensitive on the trimmed text. "ACTION: <tool> <argument>"
// yields an ActionDirective, "FINAL: <answer>" a FinalDirective, and anything else is
// returned unchanged as a RawDirective. An action without a tool name is a *DirectiveErr.
func ParseDirective(text string) (Directive, error) {
	trimmed := strings.TrimSpace(text)

	switch {
	case hasPrefixFold(trimmed, actionPrefix):
		_, rest, _ := strings.Cut(trimmed, ":")
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return nil, NewDirectiveErr("action directive is missing a tool name")
		}

		name, argument := rest, ""
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			name = rest[:i]
			argument = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
		}
		return ActionDirective{ToolName: name, Argument: argument}, nil

	case hasPrefixFold(trimmed, finalPrefix):
		_, answer, _ := strings.Cut(trimmed, ":")
		return FinalDirective{Answer: strings.TrimSpace(answer)}, nil

	default:
		return RawDirective{Text: text}, nil
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
