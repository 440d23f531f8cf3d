package main

import (
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/app"
	"github.com/spf13/cobra"
)

var (
	envFiles  string
	port      string
	logConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "groqagent",
	Short: "Groq completion demo: a tool-using agent and an image prompt generator",
	Long: `groqagent talks to a Groq-style completions endpoint.

Run without arguments to start the interactive console.
Configuration is read from the environment, optional .env files and Vault.
GROQ_API_KEY is required.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("env-file") {
			if err := os.Setenv("DOTENV_FILES", envFiles); err != nil {
				return fmt.Errorf("failed to set DOTENV_FILES: %w", err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return consoleCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the agent HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			if err := os.Setenv("HTTP_PORT", port); err != nil {
				return fmt.Errorf("failed to set HTTP_PORT: %w", err)
			}
		}

		agentApp := app.NewAgentAPIApp()
		if logConfig {
			agentApp = agentApp.Introspect(&app.ReportLoggerIntrospector{})
		}
		return agentApp.Run()
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewAgentConsoleApp().Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFiles, "env-file", ".env", "comma-separated .env files to load")
	serveCmd.Flags().StringVar(&port, "port", "8080", "HTTP port to listen on")
	serveCmd.Flags().BoolVar(&logConfig, "log-config", false, "log the configuration keys read at startup")

	rootCmd.AddCommand(serveCmd, consoleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
