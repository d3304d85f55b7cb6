/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Structured-log keys with special meaning to Cloud Logging.
const (
	TraceKey          = "logging.googleapis.com/trace"
	SpanIDKey         = "logging.googleapis.com/spanId"
	SampledKey        = "logging.googleapis.com/trace_sampled"
	SourceLocationKey = "logging.googleapis.com/sourceLocation"
	LabelsKey         = "logging.googleapis.com/labels"
	InsertIDKey       = "logging.googleapis.com/insertId"
)

// TraceResource formats a trace id as the resource name Cloud Logging expects
// in the trace field: projects/<project>/traces/<32 lowercase hex chars>.
func TraceResource(projectID string, id trace.TraceID) string {
	return fmt.Sprintf("projects/%s/traces/%s", projectID, id)
}

// Labels groups attrs under the Cloud Logging labels field, which the backend
// indexes separately from the payload.
func Labels(attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: LabelsKey, Value: slog.GroupValue(attrs...)}
}

// InsertID sets the Cloud Logging insert id, used by the backend to
// de-duplicate records.
func InsertID(id string) slog.Attr {
	return slog.String(InsertIDKey, id)
}

// correlationAttrs maps a resolved correlation onto outgoing log attrs. The
// three fields are independent: any of them may be absent, and an absent
// value contributes no attr at all. In particular an unknown sampling
// decision never becomes trace_sampled=false, and a record carrying only a
// trace field is a valid shape (a log tied to a remote-originated span).
func (h *Handler) correlationAttrs(c Correlation) []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if h.projectID != "" && c.HasTraceID() {
		attrs = append(attrs, slog.String(h.traceKey, TraceResource(h.projectID, c.TraceID)))
	}
	if c.HasSpanID() {
		attrs = append(attrs, slog.String(h.spanIDKey, c.SpanID.String()))
	}
	if sampled, ok := c.Sampled(); ok {
		attrs = append(attrs, slog.Bool(h.sampledKey, sampled))
	}
	return attrs
}
