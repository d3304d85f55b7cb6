/*
 * Copyright (c) 2025 the tracing-stackdriver authors
 * All rights reserved.
 */

package stackdriver

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the process-wide settings of the bridge. ProjectID is the
// only required value; it is fixed for the process lifetime and passed into
// handlers explicitly rather than read from ambient globals.
type Config struct {
	ProjectID      string `envconfig:"GOOGLE_CLOUD_PROJECT"`
	SourceLocation bool   `envconfig:"LOG_SOURCE_LOCATION" default:"true"`
}

// ConfigFromEnv loads Config from the environment, using the conventional
// GOOGLE_CLOUD_PROJECT variable for the project id.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("stackdriver: load config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into handler options, applied before any
// explicitly passed ones.
func (c Config) Options() []Options {
	return []Options{
		WithProjectID(c.ProjectID),
		WithSourceLocation(c.SourceLocation),
	}
}

// NewHandlerFromEnv builds a correlation handler configured from the
// environment. See NewHandler for the empty-project-id contract.
func NewHandlerFromEnv(next slog.Handler, opts ...Options) (*Handler, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewHandler(next, append(cfg.Options(), opts...)...)
}
