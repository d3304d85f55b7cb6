/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("project id from GOOGLE_CLOUD_PROJECT", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "acme")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "acme", cfg.ProjectID)
		assert.True(t, cfg.SourceLocation)
	})

	t.Run("source location override", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "acme")
		t.Setenv("LOG_SOURCE_LOCATION", "false")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.False(t, cfg.SourceLocation)
	})

	t.Run("options carry the config", func(t *testing.T) {
		cfg := Config{ProjectID: "acme", SourceLocation: false}

		h := newHandler(cfg.Options()...)
		assert.Equal(t, "acme", h.projectID)
		assert.False(t, h.sourceLocation)
	})
}
