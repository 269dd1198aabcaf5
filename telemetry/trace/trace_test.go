package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TestDefaultTracerIsNoop verifies that the package starts with a working,
// zero-configuration tracer: starting a span must not panic and must
// return a usable (if inert) span.
func TestDefaultTracerIsNoop(t *testing.T) {
	_, span := Tracer.Start(context.Background(), "corestore.dispatch")
	assert.NotNil(t, span)
	span.End()
}

// TestUseProviderInstallsTracer verifies that UseProvider replaces the
// package-level Tracer with one sourced from the given provider.
func TestUseProviderInstallsTracer(t *testing.T) {
	old := Tracer
	defer func() { Tracer = old }()

	tp := sdktrace.NewTracerProvider()
	UseProvider(tp)
	assert.NotEqual(t, old, Tracer)
}
