package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess     = "success"
	outcomeError       = "error"
	outcomeUnknownTool = "unknown_tool"
)

var (
	meter          = otel.Meter("usecases")
	LLMCompletions metric.Int64Counter
	ToolDispatches metric.Int64Counter

	LLMCompletionDuration metric.Float64Histogram
)

func init() {
	var err error
	LLMCompletions, err = meter.Int64Counter(
		"llm_completions_total",
		metric.WithDescription("Total completion calls by outcome"),
	)
	if err != nil {
		panic(err)
	}

	LLMCompletionDuration, err = meter.Float64Histogram(
		"llm_completion_duration_seconds",
		metric.WithDescription("Completion call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	ToolDispatches, err = meter.Int64Counter(
		"tool_dispatches_total",
		metric.WithDescription("Total tool dispatches by tool and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMCompletion records the outcome of a completion call.
// Failures are labeled with the completion error kind when available.
func RecordLLMCompletion(ctx context.Context, start time.Time, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
		if kind, ok := completionErrKind(err); ok {
			outcome = string(kind)
		}
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	LLMCompletions.Add(ctx, 1, attrs)
	LLMCompletionDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// RecordToolDispatch records the outcome of a tool dispatch.
func RecordToolDispatch(ctx context.Context, tool string, result domain.ToolResult) {
	outcome := outcomeSuccess
	switch {
	case result.IsUnknownTool():
		outcome = outcomeUnknownTool
	case result.IsError():
		outcome = outcomeError
	}
	ToolDispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}
