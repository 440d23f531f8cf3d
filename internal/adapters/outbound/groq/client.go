// Package groq provides a client for a Groq-style text-completions endpoint.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultTimeout bounds a single completion call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// CompletionAPIClient posts prompts to a completions endpoint.
// It implements domain.CompletionClient and is safe for concurrent use.
type CompletionAPIClient struct {
	endpoint string
	apiKey   string
	model    string
	timeout  time.Duration
	http     *http.Client
}

// NewCompletionAPIClient creates a new client. The API key is required.
func NewCompletionAPIClient(endpoint, apiKey, model string, timeout time.Duration, httpClient *http.Client) (CompletionAPIClient, error) {
	if apiKey == "" {
		return CompletionAPIClient{}, domain.NewValidationErr("GROQ_API_KEY must be set")
	}
	if endpoint == "" {
		return CompletionAPIClient{}, domain.NewValidationErr("completion endpoint cannot be empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return CompletionAPIClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		timeout:  timeout,
		http:     httpClient,
	}, nil
}

// Generate sends one completion request and returns the extracted text.
// Every failure is a *domain.CompletionErr.
func (c CompletionAPIClient) Generate(ctx context.Context, req domain.CompletionRequest) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	body := completionRequest{
		Model:       c.model,
		Prompt:      req.Prompt,
		MaxTokens:   common.ValueOr(req.MaxTokens, domain.DefaultMaxTokens),
		Temperature: common.ValueOr(req.Temperature, domain.DefaultTemperature),
	}
	if req.Model != "" {
		body.Model = req.Model
	}
	span.SetAttributes(attribute.String("llm.model", body.Model))

	text, err := c.post(spanCtx, body)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return text, nil
}

func (c CompletionAPIClient) post(ctx context.Context, body completionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newPostRequest(ctx, body)
	if err != nil {
		return "", domain.NewCompletionErr(domain.CompletionErrKind_Transport, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", domain.NewCompletionErr(transportErrKind(err), err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewCompletionErr(transportErrKind(err), fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewCompletionErr(
			domain.CompletionErrKind_HTTP,
			fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody)),
		)
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", domain.NewCompletionErr(domain.CompletionErrKind_Decode, fmt.Errorf("unmarshal response: %w", err))
	}

	if obj, ok := decoded.(map[string]any); ok {
		if text, found := domain.ExtractCompletionText(obj); found {
			return text, nil
		}
	}
	// Unrecognized shapes are returned as the raw body.
	return string(respBody), nil
}

func (c CompletionAPIClient) newPostRequest(ctx context.Context, body completionRequest) (*http.Request, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func transportErrKind(err error) domain.CompletionErrKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.CompletionErrKind_Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.CompletionErrKind_Timeout
	}
	return domain.CompletionErrKind_Transport
}

var _ domain.CompletionClient = CompletionAPIClient{}

// InitCompletionClient initializes the completion client dependency.
type InitCompletionClient struct {
	HttpClient *http.Client  `resolve:""`
	APIKey     string        `config:"GROQ_API_KEY"`
	Model      string        `config:"GROQ_MODEL" default:"groq-default"`
	APIURL     string        `config:"GROQ_API_URL" default:"https://api.groq.ai/v1/completions"`
	Timeout    time.Duration `config:"GROQ_TIMEOUT" default:"30s"`
}

// Initialize registers the domain.CompletionClient.
func (i InitCompletionClient) Initialize(ctx context.Context) (context.Context, error) {
	client, err := NewCompletionAPIClient(i.APIURL, i.APIKey, i.Model, i.Timeout, i.HttpClient)
	if err != nil {
		return ctx, fmt.Errorf("failed to create completion client: %w", err)
	}
	depend.Register[domain.CompletionClient](client)
	return ctx, nil
}
