package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionErr(t *testing.T) {
	cause := fmt.Errorf("dial tcp: %w", context.DeadlineExceeded)
	err := NewCompletionErr(CompletionErrKind_Timeout, cause)

	assert.Equal(t, "TimeoutError: dial tcp: context deadline exceeded", err.Error())
	assert.Equal(t, "LLM_ERROR: TimeoutError: dial tcp: context deadline exceeded", err.SentinelText())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var wrapped error = fmt.Errorf("generate: %w", err)
	var ce *CompletionErr
	assert.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, CompletionErrKind_Timeout, ce.Kind)
}

func TestDomainErrors(t *testing.T) {
	assert.Equal(t, "bad input", NewValidationErr("bad input").Error())
	assert.Equal(t, "no tool", NewDirectiveErr("no tool").Error())
}
