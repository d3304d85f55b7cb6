/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"context"
	"sync"
	"sync/atomic"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Registry captures per-span state as spans start so that log emission can
// resolve correlation from the exact state the instrumentation layer built,
// parent context included. It implements sdktrace.SpanProcessor and must be
// registered on the TracerProvider before any span whose logs should
// correlate is started; that registration order is the pipeline contract the
// deployment has to satisfy. A registry attached too late observes no state
// for already-running spans, and every lookup for them degrades to the
// context fallback for the span's whole lifetime.
//
// The registry owns the state it stores; handlers only hold a lookup handle
// and never mutate or free entries. Entries are written once at span start
// and evicted at span end.
type Registry struct {
	mu     sync.RWMutex
	states map[trace.SpanID]SpanState

	misses atomic.Int64
}

// NewRegistry creates an empty span state registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[trace.SpanID]SpanState)}
}

var _ sdktrace.SpanProcessor = (*Registry)(nil)

// OnStart records the starting span's state: its own ids, the sampling
// decision implied by its recording status, and the span context that was
// active in the parent context. Only recorded spans reach a span processor,
// so the decision here is never Drop.
func (r *Registry) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	sc := s.SpanContext()

	state := SpanState{
		TraceID: sc.TraceID(),
		SpanID:  sc.SpanID(),
		Parent:  trace.SpanContextFromContext(parent),
	}
	if sc.IsSampled() {
		state.Decision = DecisionRecordAndSample
	} else {
		state.Decision = DecisionRecordOnly
	}

	r.mu.Lock()
	r.states[sc.SpanID()] = state
	r.mu.Unlock()
}

// OnEnd evicts the ended span's state.
func (r *Registry) OnEnd(s sdktrace.ReadOnlySpan) {
	r.mu.Lock()
	delete(r.states, s.SpanContext().SpanID())
	r.mu.Unlock()
}

// Shutdown drops all remaining state.
func (r *Registry) Shutdown(context.Context) error {
	r.mu.Lock()
	r.states = make(map[trace.SpanID]SpanState)
	r.mu.Unlock()
	return nil
}

// ForceFlush is a no-op; the registry buffers nothing for export.
func (r *Registry) ForceFlush(context.Context) error {
	return nil
}

// StateOf looks up the state registered for the span identified by sc.
//
// A miss for a valid local span context is counted: local spans should always
// have been registered at start, so a steady miss rate is the signature of a
// misordered pipeline (registry attached after spans began). A remote span
// context legitimately has no local state and is not counted, which keeps the
// two conditions distinguishable in monitoring.
func (r *Registry) StateOf(sc trace.SpanContext) (SpanState, bool) {
	if !sc.IsValid() {
		return SpanState{}, false
	}

	r.mu.RLock()
	state, ok := r.states[sc.SpanID()]
	r.mu.RUnlock()

	if !ok && !sc.IsRemote() {
		r.misses.Add(1)
	}
	return state, ok
}

// Misses reports how many lookups for valid local span contexts found no
// registered state.
func (r *Registry) Misses() int64 {
	return r.misses.Load()
}

// Len reports the number of spans currently registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
