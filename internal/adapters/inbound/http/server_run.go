package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/cfg.yml openapi.yml

var _ gen.ServerInterface = (*AgentAPIServer)(nil)

// AgentAPIServer is the HTTP API for the agent, the image prompt generator and plain completions.
type AgentAPIServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                  `resolve:""`
	RunAgentUseCase            usecases.RunAgent            `resolve:""`
	GenerateImagePromptUseCase usecases.GenerateImagePrompt `resolve:""`
	CompletePromptUseCase      usecases.CompletePrompt      `resolve:""`
}

// Handler builds the routed and instrumented handler.
func (api AgentAPIServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	// Create the OpenAPI handler; the telemetry middleware wraps the request id one.
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			RequestIDMiddleware,
			telemetry.Middleware("groqagent-api"),
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server and shuts it down when ctx is done.
func (api AgentAPIServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AgentAPIServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AgentAPIServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AgentAPIServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the AgentAPIServer is ready by calling its health endpoint.
func (api AgentAPIServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
