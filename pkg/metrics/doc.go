// Package metrics provides the tracing primitives used to instrument the
// KEM's three core operations.
//
// # Overview
//
// The package exposes a small Tracer interface compatible with
// OpenTelemetry, plus two built-in implementations: NoOpTracer (the
// default) and SimpleTracer (an in-memory recorder useful for tests). A
// third implementation, OTelTracer, adapts the real OpenTelemetry SDK and
// is only compiled with the "otel" build tag.
//
// # Quick Start
//
//	import "github.com/pzverkov/latticekem/pkg/metrics"
//
//	// Use the simple tracer for testing
//	tracer := metrics.NewSimpleTracer()
//	metrics.SetTracer(tracer)
//
//	// OpenTelemetry adapter (uses the global provider)
//	otelTracer := metrics.NewOTelTracer("latticekem")
//	metrics.SetTracer(otelTracer)
//	// Build with -tags otel to enable the adapter.
//
// # Instrumenting the KEM
//
// pkg/kem starts a span around each of Generate, Encapsulate, and
// Decapsulate using the standard span names:
//
//	ctx, end := metrics.StartSpan(ctx, metrics.SpanEncapsulate,
//		metrics.WithAttributes(metrics.SpanAttributes{
//			ParamSet: k.ParamSet().String(),
//			Role:     "encryptor",
//		}.ToMap()))
//	defer func() { end(err) }() // err is nil on success, or the operation's error
//
// # Custom Tracers
//
// Any type implementing the Tracer interface may be installed with
// SetTracer, including a caller-provided OpenTelemetry, Jaeger, or other
// backend adapter.
package metrics
