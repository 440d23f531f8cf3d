package app

import (
	"os"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/console"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/outbound/groq"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/telemetry"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/tools"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/usecases"
)

// NewAgentAPIApp creates the application that serves the agent HTTP API.
func NewAgentAPIApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(coreInitializers(&log.InitLogger{})...).
		Host(
			&http.AgentAPIServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

// NewAgentConsoleApp creates the interactive console application.
// Logs go to stderr so they do not interleave with answers on stdout.
func NewAgentConsoleApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(coreInitializers(&log.InitLogger{Output: os.Stderr})...).
		Host(
			&console.AgentConsole{In: os.Stdin, Out: os.Stdout},
		)
}

func coreInitializers(logger symbiont.Initializer) []symbiont.Initializer {
	return []symbiont.Initializer{
		&config.InitDotEnv{},
		logger,
		&config.InitVaultProvider{},
		&telemetry.InitOpenTelemetry{},
		&telemetry.InitHttpClient{},
		&groq.InitCompletionClient{},
		&tools.InitToolRegistry{},

		&usecases.InitRunAgent{},
		&usecases.InitGenerateImagePrompt{},
		&usecases.InitCompletePrompt{},
	}
}
