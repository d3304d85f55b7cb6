/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelDebug + 2, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelInfo + 2, "INFO"},
		{slog.LevelWarn, "WARNING"},
		{slog.LevelError, "ERROR"},
		{slog.LevelError + 3, "ERROR"},
		{slog.LevelError + 4, "CRITICAL"},
		{slog.LevelError + 8, "CRITICAL"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, Severity(test.level))
		})
	}
}

func TestSink(t *testing.T) {
	setupSink := func(t *testing.T, opts ...Options) (*bytes.Buffer, *slog.Logger) {
		buf := bytes.NewBuffer(nil)
		handler, err := NewSink(buf, append([]Options{WithProjectID("acme")}, opts...)...)
		require.NoError(t, err)
		return buf, slog.New(handler)
	}

	t.Run("records carry cloud logging shape", func(t *testing.T) {
		buf, logger := setupSink(t)

		logger.Warn("shaped record", "key1", "value1")

		assert.Contains(t, buf.String(), `"severity":"WARNING"`)
		assert.Contains(t, buf.String(), `"message":"shaped record"`)
		assert.Contains(t, buf.String(), `"key1":"value1"`)
		assert.NotContains(t, buf.String(), `"msg"`)
		assert.NotContains(t, buf.String(), `"level"`)
	})

	t.Run("source location recorded by default", func(t *testing.T) {
		buf, logger := setupSink(t)

		logger.Info("with source")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		location, ok := record[SourceLocationKey].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, location["file"], "sink_test.go")
		assert.NotEmpty(t, location["function"])
	})

	t.Run("source location can be disabled", func(t *testing.T) {
		buf, logger := setupSink(t, WithSourceLocation(false))

		logger.Info("without source")

		assert.NotContains(t, buf.String(), SourceLocationKey)
	})

	t.Run("labels and insert id helpers", func(t *testing.T) {
		buf, logger := setupSink(t)

		logger.Info("labeled",
			Labels(slog.String("tier", "gold")),
			InsertID("record-1"))

		assert.Contains(t, buf.String(), `"logging.googleapis.com/labels":{"tier":"gold"}`)
		assert.Contains(t, buf.String(), `"logging.googleapis.com/insertId":"record-1"`)
	})

	t.Run("correlation fields ride on shaped records", func(t *testing.T) {
		buf, logger := setupSink(t)
		ctx := trace.ContextWithSpanContext(context.Background(), parentContext(false))

		logger.ErrorContext(ctx, "shaped and correlated")

		assert.Contains(t, buf.String(), `"severity":"ERROR"`)
		assert.Contains(t, buf.String(),
			`"logging.googleapis.com/trace":"projects/acme/traces/67f1ab560e10b2e5e7699ae4faaae644"`)
	})

	t.Run("group attrs keep their keys", func(t *testing.T) {
		buf, logger := setupSink(t, WithSourceLocation(false))

		logger.Info("grouped", slog.Group("request", slog.String("method", "GET")))

		assert.Contains(t, buf.String(), `"request":{"method":"GET"}`)
	})

	t.Run("empty project id", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		handler, err := NewSink(buf)
		assert.ErrorIs(t, err, ErrMissingProjectID)

		slog.New(handler).Info("still usable")
		assert.Contains(t, buf.String(), `"message":"still usable"`)
	})
}
