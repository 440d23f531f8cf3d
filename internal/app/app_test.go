package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAgentAPIApp_Initializers(t *testing.T) {
	app := NewAgentAPIApp()
	require.NotNil(t, app, "NewAgentAPIApp should not return nil")
}

func TestNewAgentConsoleApp_Initializers(t *testing.T) {
	app := NewAgentConsoleApp()
	require.NotNil(t, app, "NewAgentConsoleApp should not return nil")
}
