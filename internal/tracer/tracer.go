// Package tracer provides the tracing abstraction used by sqlalias.
// It supports OpenTelemetry and allows custom tracer implementations.
package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer defines the tracing interface for sqlalias.
type Tracer interface {
	// StartSpan starts a new tracing span with the given name
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span that captures the execution of an operation.
type Span interface {
	// SetAttributes sets key-value attributes on the span
	SetAttributes(attrs ...attribute.KeyValue)
	// RecordError records an error that occurred during the span
	RecordError(err error)
	// SetStatus sets the status code and description of the span
	SetStatus(code codes.Code, description string)
	// End marks the span as complete
	End()
}

// NoopTracer is a tracer that does nothing. It is the Aliaser default.
type NoopTracer struct{}

// StartSpan returns the context unchanged with a no-op span.
func (n *NoopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, &NoopSpan{}
}

// NoopSpan is a span that does nothing.
type NoopSpan struct{}

// SetAttributes does nothing.
func (n *NoopSpan) SetAttributes(_ ...attribute.KeyValue) {}

// RecordError does nothing.
func (n *NoopSpan) RecordError(_ error) {}

// SetStatus does nothing.
func (n *NoopSpan) SetStatus(_ codes.Code, _ string) {}

// End does nothing.
func (n *NoopSpan) End() {}

// OtelTracer wraps an OpenTelemetry tracer to implement the Tracer interface.
type OtelTracer struct {
	tracer trace.Tracer
}

// NewOtelTracer creates a new OpenTelemetry tracer adapter.
// The provided tracer must not be nil.
func NewOtelTracer(tracer trace.Tracer) *OtelTracer {
	return &OtelTracer{tracer: tracer}
}

// StartSpan starts a new OpenTelemetry span.
func (t *OtelTracer) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OtelSpan{span: span}
}

// OtelSpan wraps an OpenTelemetry span.
type OtelSpan struct {
	span trace.Span
}

// SetAttributes sets OpenTelemetry attributes on the span.
func (s *OtelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	s.span.SetAttributes(attrs...)
}

// RecordError records an error on the OpenTelemetry span.
func (s *OtelSpan) RecordError(err error) {
	s.span.RecordError(err)
}

// SetStatus sets the status of the OpenTelemetry span.
func (s *OtelSpan) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

// End completes the OpenTelemetry span.
func (s *OtelSpan) End() {
	s.span.End()
}

// Span names used by the Aliaser.
const (
	SpanTables  = "sqlalias.tables"
	SpanColumns = "sqlalias.columns"
)

// AliasMetadata describes one alias computation for tracing purposes.
type AliasMetadata struct {
	// Operation is "tables" or "columns"
	Operation string
	// Dialect is the target dialect name (empty when none was configured)
	Dialect string
	// MaxLength is the alias length limit, 0 when unlimited
	MaxLength int
	// Tables is the number of distinct tables aliased
	Tables int
	// Pairs is the number of (table, column) pairs aliased
	Pairs int
	// Rounds is the number of alias-growing rounds that ran
	Rounds int
	// Fallback lists the tables that needed a numeric suffix
	Fallback []string
	// Duration is how long the computation took
	Duration time.Duration
	// Error is any contract violation reported by the computation
	Error error
}

// AddAliasAttributes adds sqlalias attributes to a span and sets its status.
func AddAliasAttributes(span Span, meta *AliasMetadata) {
	attrs := []attribute.KeyValue{
		attribute.String("sqlalias.operation", meta.Operation),
		attribute.Int("sqlalias.tables", meta.Tables),
		attribute.Int("sqlalias.rounds", meta.Rounds),
		attribute.Float64("sqlalias.duration_ms", float64(meta.Duration.Microseconds())/1000.0),
	}

	if meta.Dialect != "" {
		attrs = append(attrs, attribute.String("db.system", meta.Dialect))
	}
	if meta.MaxLength > 0 {
		attrs = append(attrs, attribute.Int("sqlalias.max_length", meta.MaxLength))
	}
	if meta.Pairs > 0 {
		attrs = append(attrs, attribute.Int("sqlalias.pairs", meta.Pairs))
	}
	if len(meta.Fallback) > 0 {
		attrs = append(attrs, attribute.StringSlice("sqlalias.fallback", meta.Fallback))
	}

	span.SetAttributes(attrs...)

	if meta.Error != nil {
		span.RecordError(meta.Error)
		span.SetStatus(codes.Error, meta.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
