package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompletePromptImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		req             domain.CompletionRequest
		setExpectations func(*domain.MockCompletionClient)
		expected        string
		expectedErr     string
	}{
		"defaults-applied": {
			req: domain.CompletionRequest{Prompt: "Say hello in one sentence."},
			setExpectations: func(client *domain.MockCompletionClient) {
				client.EXPECT().
					Generate(mock.Anything, domain.CompletionRequest{
						Prompt:      "Say hello in one sentence.",
						MaxTokens:   common.Ptr(domain.DefaultMaxTokens),
						Temperature: common.Ptr(domain.DefaultTemperature),
					}).
					Return("Hello!", nil).
					Once()
			},
			expected: "Hello!",
		},
		"explicit-parameters-kept": {
			req: domain.CompletionRequest{
				Model:       "llama-3",
				Prompt:      "hi",
				MaxTokens:   common.Ptr(16),
				Temperature: common.Ptr(0.0),
			},
			setExpectations: func(client *domain.MockCompletionClient) {
				client.EXPECT().
					Generate(mock.Anything, domain.CompletionRequest{
						Model:       "llama-3",
						Prompt:      "hi",
						MaxTokens:   common.Ptr(16),
						Temperature: common.Ptr(0.0),
					}).
					Return("hey", nil).
					Once()
			},
			expected: "hey",
		},
		"empty-prompt": {
			req:         domain.CompletionRequest{Prompt: " "},
			expectedErr: "prompt cannot be empty",
		},
		"invalid-max-tokens": {
			req:         domain.CompletionRequest{Prompt: "hi", MaxTokens: common.Ptr(0)},
			expectedErr: "max_tokens must be greater than zero",
		},
		"invalid-temperature": {
			req:         domain.CompletionRequest{Prompt: "hi", Temperature: common.Ptr(2.5)},
			expectedErr: "temperature must be between 0 and 2",
		},
		"completion-error": {
			req: domain.CompletionRequest{Prompt: "hi"},
			setExpectations: func(client *domain.MockCompletionClient) {
				client.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return("", domain.NewCompletionErr(domain.CompletionErrKind_Decode, errors.New("invalid character"))).
					Once()
			},
			expectedErr: "failed to complete prompt: DecodeError: invalid character",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := domain.NewMockCompletionClient(t)
			if tt.setExpectations != nil {
				tt.setExpectations(client)
			}

			got, err := NewCompletePromptImpl(client).Execute(context.Background(), tt.req)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitCompletePrompt_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitCompletePrompt{Client: domain.NewMockCompletionClient(t)}.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[CompletePrompt]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
