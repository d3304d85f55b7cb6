/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import "go.opentelemetry.io/otel/trace"

// Correlation is the resolved identifier triple attached to a single outgoing
// log record. It is built fresh per record and never reused; every field is
// optional and the zero value carries no correlation at all.
type Correlation struct {
	TraceID trace.TraceID
	SpanID  trace.SpanID

	sampled    bool
	sampledSet bool
}

// HasTraceID reports whether a trace id was resolved.
func (c Correlation) HasTraceID() bool { return c.TraceID.IsValid() }

// HasSpanID reports whether a span id was resolved.
func (c Correlation) HasSpanID() bool { return c.SpanID.IsValid() }

// Sampled returns the resolved sampling flag. ok is false when no sampling
// decision existed for the span; callers must then omit the field rather
// than treat the value as false.
func (c Correlation) Sampled() (value, ok bool) { return c.sampled, c.sampledSet }

// Resolve computes the correlation triple for one log emission from the state
// of the currently active span. It is a pure function of its argument: no
// side effects, no mutation of state, the same input always yields the same
// triple.
//
// Trace id and span id deliberately follow different fallback rules, kept in
// two separate functions so that the remote-exclusion rule can never leak
// from one into the other: the trace id propagates across remote boundaries,
// the span id does not.
func Resolve(state SpanState) Correlation {
	c := Correlation{
		TraceID: resolveTraceID(state),
		SpanID:  resolveSpanID(state),
	}
	if state.Decision != DecisionUnset {
		c.sampled = state.Decision == DecisionRecordAndSample
		c.sampledSet = true
	}
	return c
}

// resolveTraceID prefers the span's own trace id, then any valid parent. The
// trace id must stay identical across every span of a distributed trace,
// including spans that represent inbound remote calls, so remoteness is
// irrelevant here; only validity matters.
func resolveTraceID(state SpanState) trace.TraceID {
	if state.TraceID.IsValid() {
		return state.TraceID
	}
	if state.Parent.IsValid() {
		return state.Parent.TraceID()
	}
	return trace.TraceID{}
}

// resolveSpanID prefers the span's own id, then a valid non-remote parent.
// A span id is only meaningful to the backend when this process is the one
// exporting it; a remote parent's span id belongs to another service's export
// stream and referencing it leaves a dangling span reference at the backend.
func resolveSpanID(state SpanState) trace.SpanID {
	if state.SpanID.IsValid() {
		return state.SpanID
	}
	if state.Parent.IsValid() && !state.Parent.IsRemote() {
		return state.Parent.SpanID()
	}
	return trace.SpanID{}
}
