/*
Package stackdriver bridges OpenTelemetry tracing and Go's structured logging
(slog) for Google Cloud Logging. It resolves, for every emitted log record,
the trace id, span id and sampling flag the record should carry, and injects
them under the structured-log keys the Cloud Logging backend uses to link log
lines to trace spans and render the trace hierarchy.

# Core Concepts

The package is built around three small pieces:

Identifier resolution:
  - Resolve is a pure function from a span's state (its own ids, its sampling
    decision, and the span context of its parent) to a Correlation triple.
  - The trace id is propagation-oriented: a span without its own trace id
    inherits any valid parent's trace id, remote or not, because the trace id
    must stay identical across every span of a distributed trace.
  - The span id is locality-oriented: only ids exported by this process may
    be referenced, so a remote parent never contributes a span id. A log tied
    to a remote-originated span carries a trace field and no span id; that is
    a valid record shape, not an error.
  - The sampling flag comes exclusively from the span's own decision. An
    absent decision means unknown and omits the field; it is never reported
    as false.

Field injection:
  - Handler is a chained slog.Handler that resolves the correlation for each
    record and attaches up to three attrs: logging.googleapis.com/trace as
    projects/<project>/traces/<32-hex trace id>, logging.googleapis.com/spanId
    as 16 lowercase hex chars, and logging.googleapis.com/trace_sampled.
  - All three fields are independent and optional. Absent values contribute
    nothing; no placeholder is ever written.

Span state registry:
  - Registry is an sdktrace.SpanProcessor that snapshots each span's state,
    parent context included, as the span starts, and evicts it at span end.
    Handlers resolve from the registry when one is configured and fall back
    to the span context in the log call's context otherwise.
  - The registry must be attached to the TracerProvider before spans start.
    A registry attached too late observes no state for running spans, and
    resolution silently degrades for their whole lifetime; Registry.Misses
    exposes that condition so monitoring can tell it apart from the expected
    remote-parent case.

# Basic Usage

1. Writing Cloud-Logging-shaped JSON to stdout:

	handler, err := stackdriver.NewSink(os.Stdout, stackdriver.WithProjectID("my-project"))
	if err != nil {
	    log.Fatal(err)
	}
	slog.SetDefault(slog.New(handler))
	slog.Info("hello, world")

2. Chaining over an existing handler:

	handler, err := stackdriver.NewHandler(
	    slog.NewJSONHandler(os.Stdout, nil),
	    stackdriver.WithProjectID("my-project"),
	)

3. Configuring from the environment (GOOGLE_CLOUD_PROJECT):

	handler, err := stackdriver.NewHandlerFromEnv(slog.NewJSONHandler(os.Stdout, nil))

# Registry Usage

Attach the registry to the TracerProvider before anything starts spans, then
hand the same registry to the handler:

	registry := stackdriver.NewRegistry()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(registry))
	otel.SetTracerProvider(tp)

	handler, err := stackdriver.NewSink(os.Stdout,
	    stackdriver.WithProjectID("my-project"),
	    stackdriver.WithRegistry(registry),
	)

# Configuration Options

WithProjectID(projectID string):

	Sets the Google Cloud project id used in the trace resource name. An
	empty project id is reported once as ErrMissingProjectID at construction;
	the handler still works and omits the trace field.

WithRegistry(r *Registry):

	Resolves span state from the registry instead of the ambient context.

WithTraceKey / WithSpanIDKey / WithSampledKey:

	Override the structured-log keys for the three correlation fields.

WithSourceLocation(enabled bool):

	Controls the sourceLocation field written by NewSink.

# Labels and Insert Ids

Cloud Logging indexes labels and de-duplicates on insert ids. Attach them
with the helpers:

	slog.Info("order placed",
	    stackdriver.Labels(slog.String("tier", "gold")),
	    stackdriver.InsertID("order-1234"),
	)

# Thread Safety

Resolution is a pure read of write-once span state, so concurrent log
emission against the same span needs no locking. The Registry guards its map
with a mutex; Handler itself holds only immutable configuration.
*/
package stackdriver
