// Package trace exposes the tracer the store uses to wrap each dispatch
// in a span. It defaults to a no-op provider; a host application that
// wants real spans calls UseProvider with its own trace.TracerProvider.
//
// Unlike the teacher package this is derived from, this one does not dial
// an OTLP collector: the store has no network I/O, so only the tracing
// concern is kept, not the transport.
package trace

import (
	"go.opentelemetry.io/otel/trace"
	noopt "go.opentelemetry.io/otel/trace/noop"
)

const instrumentName = "corestore"

// Tracer is the tracer used by the store to instrument dispatch. It
// defaults to a no-op implementation, so tracing is zero-cost until a
// provider is installed.
var Tracer trace.Tracer = noopt.NewTracerProvider().Tracer(instrumentName)

// UseProvider installs tp as the source of the package-level Tracer.
// Call it once during application startup, before any store is created,
// to get real spans out of dispatch.
func UseProvider(tp trace.TracerProvider) {
	Tracer = tp.Tracer(instrumentName)
}
