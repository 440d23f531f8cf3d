package usecases

import (
	"errors"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
)

// newCompletionRequest creates a request for the client's model with the default
// generation parameters.
func newCompletionRequest(prompt string) domain.CompletionRequest {
	return withDefaults(domain.CompletionRequest{Prompt: prompt})
}

// withDefaults fills generation parameters the caller left unset.
func withDefaults(req domain.CompletionRequest) domain.CompletionRequest {
	if req.MaxTokens == nil {
		req.MaxTokens = common.Ptr(domain.DefaultMaxTokens)
	}
	if req.Temperature == nil {
		req.Temperature = common.Ptr(domain.DefaultTemperature)
	}
	return req
}

func completionErrKind(err error) (domain.CompletionErrKind, bool) {
	var cErr *domain.CompletionErr
	if errors.As(err, &cErr) {
		return cErr.Kind, true
	}
	return "", false
}
