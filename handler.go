/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// ErrMissingProjectID is returned once at construction when no project id was
// configured. The handler it accompanies is still usable; it simply omits the
// trace field from every record instead of failing per record.
var ErrMissingProjectID = errors.New("stackdriver: project id is empty, trace field will be omitted")

// Options is a functional option for the Handler.
type Options func(*Handler)

// WithProjectID sets the Google Cloud project id used to build the trace
// resource name.
func WithProjectID(projectID string) Options {
	return func(h *Handler) {
		h.projectID = projectID
	}
}

// WithRegistry sets the span state registry the handler resolves from. Without
// one the handler falls back to the span context carried by the log call's
// context.
func WithRegistry(r *Registry) Options {
	return func(h *Handler) {
		h.registry = r
	}
}

// WithTraceKey sets the key used for the trace field in log records.
func WithTraceKey(key string) Options {
	return func(h *Handler) {
		h.traceKey = key
	}
}

// WithSpanIDKey sets the key used for the span id field in log records.
func WithSpanIDKey(key string) Options {
	return func(h *Handler) {
		h.spanIDKey = key
	}
}

// WithSampledKey sets the key used for the sampled field in log records.
func WithSampledKey(key string) Options {
	return func(h *Handler) {
		h.sampledKey = key
	}
}

// WithSourceLocation controls whether NewSink records source locations under
// the Cloud Logging sourceLocation field. Enabled by default. It has no
// effect on handlers built with NewHandler, where the next handler owns the
// record shape.
func WithSourceLocation(enabled bool) Options {
	return func(h *Handler) {
		h.sourceLocation = enabled
	}
}

// NewHandler creates a slog.Handler that tags every record passing through it
// with Cloud Trace correlation fields before delegating to next.
//
// An empty project id is a configuration mistake, reported here exactly once
// as ErrMissingProjectID; the returned handler still works and omits the
// trace field.
func NewHandler(next slog.Handler, opts ...Options) (*Handler, error) {
	h := newHandler(opts...)
	h.Next = next
	return h, h.validate()
}

func newHandler(opts ...Options) *Handler {
	h := &Handler{
		traceKey:       TraceKey,
		spanIDKey:      SpanIDKey,
		sampledKey:     SampledKey,
		sourceLocation: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) validate() error {
	if h.projectID == "" {
		return ErrMissingProjectID
	}
	return nil
}

// Handler resolves trace correlation for each log record and injects the
// resolved fields into it. It owns no span state itself: state is read from
// the Registry, or derived from the record's context, and the resolution is
// a pure synchronous computation on the emitting goroutine.
type Handler struct {
	projectID string
	registry  *Registry

	traceKey   string
	spanIDKey  string
	sampledKey string

	sourceLocation bool

	// Next slog.Handler in the chain.
	Next slog.Handler
}

// Enabled reports whether the next handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.Next == nil {
		return false
	}
	return h.Next.Enabled(ctx, level)
}

// Handle resolves the correlation triple for the record's span and attaches
// the resulting fields, then delegates to the next handler. Records without
// any resolvable correlation pass through untouched.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if h.Next == nil {
		return nil
	}

	if attrs := h.correlationAttrs(Resolve(h.stateFor(ctx))); len(attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(attrs...)
	}

	return h.Next.Handle(ctx, record)
}

// stateFor reads the span state for ctx, preferring the registry entry the
// instrumentation layer wrote at span start and falling back to the ambient
// span context.
func (h *Handler) stateFor(ctx context.Context) SpanState {
	if h.registry != nil {
		if state, ok := h.registry.StateOf(trace.SpanContextFromContext(ctx)); ok {
			return state
		}
	}
	return StateFromContext(ctx)
}

// WithAttrs returns a new slog.Handler whose next handler includes the given
// attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.Next
	if next != nil {
		next = next.WithAttrs(attrs)
	}
	return h.clone(next)
}

// WithGroup returns a new slog.Handler whose next handler opens the given
// group. Cloud Logging only recognizes correlation fields at the top level of
// a record, so the handler should sit above any grouped handlers in the chain.
func (h *Handler) WithGroup(name string) slog.Handler {
	next := h.Next
	if next != nil {
		next = next.WithGroup(name)
	}
	return h.clone(next)
}

func (h *Handler) clone(next slog.Handler) *Handler {
	return &Handler{
		projectID:      h.projectID,
		registry:       h.registry,
		traceKey:       h.traceKey,
		spanIDKey:      h.spanIDKey,
		sampledKey:     h.sampledKey,
		sourceLocation: h.sourceLocation,
		Next:           next,
	}
}
