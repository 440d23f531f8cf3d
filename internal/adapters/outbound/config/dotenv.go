package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// InitDotEnv loads variables from local .env files into the process environment.
// Missing files are skipped and variables already set are never overridden.
type InitDotEnv struct {
	Files string `config:"DOTENV_FILES" default:".env"`
}

// Initialize loads every existing file listed in Files (comma-separated).
func (ide InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	for path := range strings.SplitSeq(ide.Files, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return ctx, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return ctx, nil
}
