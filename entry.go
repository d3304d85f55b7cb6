/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"context"

	"cloud.google.com/go/logging"
)

// SetEntryTrace fills the trace fields of a Cloud Logging entry from a
// resolved correlation, for callers shipping through the Cloud Logging client
// instead of a JSON sink. The semantics mirror the slog injector: each field
// is independent, absent values leave the entry field untouched, and an
// unknown sampling decision never becomes TraceSampled=false.
func SetEntryTrace(e *logging.Entry, c Correlation, projectID string) {
	if projectID != "" && c.HasTraceID() {
		e.Trace = TraceResource(projectID, c.TraceID)
	}
	if c.HasSpanID() {
		e.SpanID = c.SpanID.String()
	}
	if sampled, ok := c.Sampled(); ok {
		e.TraceSampled = sampled
	}
}

// SetEntry resolves the span state for ctx the same way Handle does, registry
// first and context fallback second, and applies the result to the entry.
func (h *Handler) SetEntry(ctx context.Context, e *logging.Entry) {
	SetEntryTrace(e, Resolve(h.stateFor(ctx)), h.projectID)
}
