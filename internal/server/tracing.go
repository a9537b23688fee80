package server

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/navaneethred/opticfibresimulation/internal/server"

// tracingMiddleware wraps next in a server span carrying the standard HTTP
// attributes. With no tracer provider configured the spans are no-ops, so
// the middleware costs nothing in the default CLI setup.
func tracingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	tracer := otel.Tracer(tracerName)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			))
		defer span.End()

		next(w, r.WithContext(ctx))
	}
}

// recordSpanError attaches err to the active span of ctx, if any.
func recordSpanError(r *http.Request, err error) {
	if err == nil {
		return
	}
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		span.RecordError(err)
	}
}
