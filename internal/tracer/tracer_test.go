package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNoopTracer(t *testing.T) {
	tracer := &NoopTracer{}
	ctx := context.Background()

	// Should not panic
	_, span := tracer.StartSpan(ctx, "test.operation")
	assert.NotNil(t, span)

	span.SetAttributes(attribute.String("key", "value"))
	span.RecordError(errors.New("test error"))
	span.SetStatus(codes.Error, "error")
	span.End()
}

func TestNoopSpan(t *testing.T) {
	span := &NoopSpan{}

	// Should not panic
	span.SetAttributes(
		attribute.String("string", "value"),
		attribute.Int("int", 42),
		attribute.Bool("bool", true),
	)
	span.RecordError(errors.New("test error"))
	span.SetStatus(codes.Error, "error")
	span.End()
}

func TestOtelTracer(t *testing.T) {
	// Create in-memory exporter for testing
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	otel.SetTracerProvider(tp)

	otelTracer := otel.Tracer("test")
	tracer := NewOtelTracer(otelTracer)

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, "test.operation")
	assert.NotNil(t, span)

	span.SetAttributes(attribute.String("key", "value"))
	span.End()

	// Force flush
	_ = tp.ForceFlush(ctx)

	// Verify span was recorded
	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	assert.Equal(t, "test.operation", spans[0].Name)
	assert.Equal(t, "value", spans[0].Attributes[0].Value.AsString())
}

func TestOtelSpan_SetAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	otelTracer := otel.Tracer("test")
	tracer := NewOtelTracer(otelTracer)

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, "test.attributes")

	span.SetAttributes(
		attribute.String("db.system", "postgres"),
		attribute.String("sqlalias.operation", "tables"),
		attribute.Int64("sqlalias.tables", 42),
		attribute.Float64("sqlalias.duration_ms", 15.5),
	)
	span.End()

	_ = tp.ForceFlush(ctx)

	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	attrs := spans[0].Attributes

	// Find attributes by key
	attrMap := make(map[string]interface{})
	for _, attr := range attrs {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}

	assert.Equal(t, "postgres", attrMap["db.system"])
	assert.Equal(t, "tables", attrMap["sqlalias.operation"])
	assert.Equal(t, int64(42), attrMap["sqlalias.tables"])
	assert.Equal(t, 15.5, attrMap["sqlalias.duration_ms"])
}

func TestOtelSpan_RecordError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	otelTracer := otel.Tracer("test")
	tracer := NewOtelTracer(otelTracer)

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, "test.error")

	testErr := errors.New("table has no alias")
	span.RecordError(testErr)
	span.SetStatus(codes.Error, testErr.Error())
	span.End()

	_ = tp.ForceFlush(ctx)

	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	assert.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

// spanAttrs returns the attributes of a recorded span keyed by name.
func spanAttrs(span tracetest.SpanStub) map[string]interface{} {
	attrMap := make(map[string]interface{})
	for _, attr := range span.Attributes {
		attrMap[string(attr.Key)] = attr.Value.AsInterface()
	}
	return attrMap
}

func TestAddAliasAttributes_Success(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	tracer := NewOtelTracer(otel.Tracer("test"))

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, SpanColumns)

	meta := &AliasMetadata{
		Operation: "columns",
		Dialect:   "oracle",
		MaxLength: 30,
		Tables:    2,
		Pairs:     5,
		Rounds:    2,
		Duration:  15 * time.Millisecond,
	}

	AddAliasAttributes(span, meta)
	span.End()

	_ = tp.ForceFlush(ctx)

	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	assert.Equal(t, SpanColumns, spans[0].Name)

	attrMap := spanAttrs(spans[0])
	assert.Equal(t, "columns", attrMap["sqlalias.operation"])
	assert.Equal(t, "oracle", attrMap["db.system"])
	assert.Equal(t, int64(30), attrMap["sqlalias.max_length"])
	assert.Equal(t, int64(2), attrMap["sqlalias.tables"])
	assert.Equal(t, int64(5), attrMap["sqlalias.pairs"])
	assert.Equal(t, int64(2), attrMap["sqlalias.rounds"])
	assert.InDelta(t, 15.0, attrMap["sqlalias.duration_ms"], 0.1)
	assert.NotContains(t, attrMap, "sqlalias.fallback")
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestAddAliasAttributes_Fallback(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	tracer := NewOtelTracer(otel.Tracer("test"))

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, SpanTables)

	AddAliasAttributes(span, &AliasMetadata{
		Operation: "tables",
		Tables:    4,
		Rounds:    5,
		Fallback:  []string{"longtable1", "longtable3"},
	})
	span.End()

	_ = tp.ForceFlush(ctx)

	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	attrMap := spanAttrs(spans[0])
	assert.Equal(t, []string{"longtable1", "longtable3"}, attrMap["sqlalias.fallback"])
	assert.NotContains(t, attrMap, "db.system")
	assert.NotContains(t, attrMap, "sqlalias.max_length")
}

func TestAddAliasAttributes_WithError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)

	tracer := NewOtelTracer(otel.Tracer("test"))

	ctx := context.Background()
	ctx, span := tracer.StartSpan(ctx, SpanColumns)

	testErr := errors.New("maximum alias length too small")
	AddAliasAttributes(span, &AliasMetadata{
		Operation: "columns",
		MaxLength: 2,
		Pairs:     1,
		Error:     testErr,
	})
	span.End()

	_ = tp.ForceFlush(ctx)

	spans := exporter.GetSpans()
	assert.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "maximum alias length too small", spans[0].Status.Description)
	assert.Len(t, spans[0].Events, 1) // Error event
}

func BenchmarkNoopTracer(b *testing.B) {
	tracer := &NoopTracer{}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := tracer.StartSpan(ctx, "test.operation")
		span.SetAttributes(attribute.String("key", "value"))
		span.End()
	}
}

func BenchmarkOtelTracer(b *testing.B) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	otelTracer := otel.Tracer("benchmark")
	tracer := NewOtelTracer(otelTracer)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := tracer.StartSpan(ctx, "test.operation")
		span.SetAttributes(attribute.String("key", "value"))
		span.End()
	}
}

func BenchmarkAddAliasAttributes(b *testing.B) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)

	otelTracer := otel.Tracer("benchmark")
	tracer := NewOtelTracer(otelTracer)
	ctx := context.Background()

	meta := &AliasMetadata{
		Operation: "columns",
		Dialect:   "postgres",
		MaxLength: 63,
		Tables:    3,
		Pairs:     12,
		Rounds:    2,
		Duration:  15 * time.Microsecond,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := tracer.StartSpan(ctx, SpanColumns)
		AddAliasAttributes(span, meta)
		span.End()
	}
}
