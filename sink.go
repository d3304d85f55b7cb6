/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"io"
	"log/slog"
)

// Cloud Logging severity names, in the order the backend ranks them.
const (
	severityDebug    = "DEBUG"
	severityInfo     = "INFO"
	severityWarning  = "WARNING"
	severityError    = "ERROR"
	severityCritical = "CRITICAL"
)

// Severity maps a slog level onto the Cloud Logging severity name. Levels
// between the standard ones map to the severity of the band they fall in;
// anything above error+4 is critical.
func Severity(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return severityDebug
	case level < slog.LevelWarn:
		return severityInfo
	case level < slog.LevelError:
		return severityWarning
	case level < slog.LevelError+4:
		return severityError
	default:
		return severityCritical
	}
}

// replaceAttr reshapes the standard slog record keys into the ones Cloud
// Logging recognizes: severity instead of level, message instead of msg, and
// the sourceLocation field for the call site. User attrs pass through
// untouched; labels and insert ids are attached via the Labels and InsertID
// helpers rather than rewritten here.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		return slog.String("severity", Severity(level))
	case slog.MessageKey:
		a.Key = "message"
		return a
	case slog.SourceKey:
		a.Key = SourceLocationKey
		return a
	default:
		return a
	}
}

// NewSink builds the full bridge in one call: a correlation Handler chained
// over a JSON handler that writes Cloud-Logging-shaped records to w. The JSON
// side renders severity, message and sourceLocation the way the backend
// expects, and the correlation side adds the trace fields.
//
// The empty-project-id contract matches NewHandler: the sink is returned
// usable alongside ErrMissingProjectID and omits the trace field.
func NewSink(w io.Writer, opts ...Options) (*Handler, error) {
	h := newHandler(opts...)
	h.Next = slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   h.sourceLocation,
		ReplaceAttr: replaceAttr,
	})
	return h, h.validate()
}
