package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// DirectiveErr represents completion text that looked like a directive but could not be parsed.
type DirectiveErr struct {
	domainErr
}

// NewDirectiveErr creates a new DirectiveErr with the given message.
func NewDirectiveErr(message string) *DirectiveErr {
	return &DirectiveErr{
		domainErr: domainErr{message: message},
	}
}

// LLMErrorPrefix marks completion failures at the external boundaries (HTTP API, console).
const LLMErrorPrefix = "LLM_ERROR:"

// CompletionErrKind classifies completion failures.
type CompletionErrKind string

const (
	CompletionErrKind_Transport CompletionErrKind = "TransportError"
	CompletionErrKind_Timeout   CompletionErrKind = "TimeoutError"
	CompletionErrKind_HTTP      CompletionErrKind = "HTTPError"
	CompletionErrKind_Decode    CompletionErrKind = "DecodeError"
)

// CompletionErr is returned by a CompletionClient when the remote call did not produce text.
type CompletionErr struct {
	Kind   CompletionErrKind
	Detail string
	Cause  error
}

// NewCompletionErr creates a CompletionErr of the given kind wrapping cause.
func NewCompletionErr(kind CompletionErrKind, cause error) *CompletionErr {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &CompletionErr{Kind: kind, Detail: detail, Cause: cause}
}

// Error returns "<kind>: <detail>".
func (e *CompletionErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying cause.
func (e *CompletionErr) Unwrap() error {
	return e.Cause
}

// SentinelText renders the error as "LLM_ERROR: <kind>: <detail>".
func (e *CompletionErr) SentinelText() string {
	return LLMErrorPrefix + " " + e.Error()
}
