package app

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// IntrospectionGraphName is the named dependency holding the Mermaid graph served by GET /introspect.
const IntrospectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector generates a Mermaid graph of the application's configuration
// and dependencies and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read and whether their defaults were used.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect writes one line listing the configuration keys of the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = log.Default()
	}

	var defaults, explicit []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults = append(defaults, c.Key)
			continue
		}
		explicit = append(explicit, c.Key)
	}
	logger.Printf("Configuration: set=[%s] defaulted=[%s]", strings.Join(explicit, ", "), strings.Join(defaults, ", "))
	return nil
}
