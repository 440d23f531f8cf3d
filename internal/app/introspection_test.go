package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "GROQ_MODEL",
				UsedDefault: true,
			},
		},
	}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	buf := &bytes.Buffer{}
	introspector := ReportLoggerIntrospector{Logger: log.New(buf, "", 0)}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "GROQ_API_KEY"},
			{Key: "GROQ_MODEL", UsedDefault: true},
			{Key: "HTTP_PORT", UsedDefault: true},
		},
	}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, "Configuration: set=[GROQ_API_KEY] defaulted=[GROQ_MODEL, HTTP_PORT]\n", buf.String())
}
