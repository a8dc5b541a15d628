package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingHandler wraps the tracer and propagators the dispatch layer uses to
// open a span per runtime call.
type TracingHandler struct {
	Tracer      trace.Tracer
	Propagators propagation.TextMapPropagator
}

// NewTracingHandler builds a handler on the given provider with W3C trace
// context and baggage propagation.
func NewTracingHandler(tp trace.TracerProvider) *TracingHandler {
	return &TracingHandler{
		Tracer: tp.Tracer("vmbind"),
		Propagators: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}
}

// NewNoopTracingHandler builds a handler that records nothing. It is the
// default when a dispatcher is configured without tracing.
func NewNoopTracingHandler() *TracingHandler {
	return NewTracingHandler(trace.NewNoopTracerProvider())
}

// StartNewSpan starts a span under ctx.
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// ExtractContext restores a remote trace context from a carrier previously
// produced by InjectContext on the caller's side.
func (th *TracingHandler) ExtractContext(carrier propagation.MapCarrier) context.Context {
	return th.Propagators.Extract(context.Background(), carrier)
}

// InjectContext packs the current trace context into a carrier suitable for
// crossing the runtime boundary.
func (th *TracingHandler) InjectContext(ctx context.Context) propagation.MapCarrier {
	carrier := propagation.MapCarrier{}
	th.Propagators.Inject(ctx, carrier)

	return carrier
}
