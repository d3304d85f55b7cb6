/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// SamplingDecision is the per-span sampling outcome with an explicit unset
// state. A span whose decision has not been observed yet is "unknown", which
// is not the same thing as "dropped": an unknown decision omits the sampled
// field from the log record instead of forcing it to false.
type SamplingDecision int

const (
	DecisionUnset SamplingDecision = iota
	DecisionDrop
	DecisionRecordOnly
	DecisionRecordAndSample
)

// DecisionFromSDK converts the tracer SDK's sampling decision. The SDK has no
// unset state; its zero value means Drop.
func DecisionFromSDK(d sdktrace.SamplingDecision) SamplingDecision {
	switch d {
	case sdktrace.RecordAndSample:
		return DecisionRecordAndSample
	case sdktrace.RecordOnly:
		return DecisionRecordOnly
	default:
		return DecisionDrop
	}
}

// SpanState is a read-only snapshot of one span as the instrumentation layer
// built it: the ids the span has been assigned so far, the sampling decision
// if one was made, and the span context that was active when the span was
// created. Every field follows a set-once discipline: the zero value means
// "not established yet", and a field never changes again after it becomes
// visible, which is what makes concurrent resolution safe without locking.
type SpanState struct {
	// TraceID is the span's locally established trace id. Zero (invalid)
	// until the span's trace context exists.
	TraceID trace.TraceID

	// SpanID is the id this process assigned to the span. Zero (invalid)
	// while the span is still being constructed.
	SpanID trace.SpanID

	// Decision is the sampling decision made for the span, or DecisionUnset
	// if none was observed.
	Decision SamplingDecision

	// Parent is the span context that was active when this span started.
	// The zero value means no parent span; an invalid non-zero value is
	// treated the same way. Parent.IsRemote reports whether the parent was
	// inherited from an upstream caller rather than exported here.
	Parent trace.SpanContext
}

// StateFromContext derives a SpanState from the span context carried by ctx.
// It is the fallback used when no Registry lookup is available, so the only
// parent information it can offer is the ambient span context itself: a valid
// local span contributes its own ids and its sampled flag, while a remote
// span context acts purely as a parent.
func StateFromContext(ctx context.Context) SpanState {
	sc := trace.SpanContextFromContext(ctx)
	state := SpanState{Parent: sc}

	if !sc.IsValid() || sc.IsRemote() {
		return state
	}

	state.TraceID = sc.TraceID()
	state.SpanID = sc.SpanID()
	if sc.IsSampled() {
		state.Decision = DecisionRecordAndSample
	} else {
		state.Decision = DecisionDrop
	}
	return state
}
