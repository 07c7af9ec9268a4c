// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/version"
)

// Config selects the span exporter: OTLP over gRPC wins over OTLP over HTTP,
// stdout is used when neither endpoint is set.
type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	ServiceVersion   string
	Logger           logging.LoggerInterface

	Enabled bool
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		ServiceVersion:   version.Version,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{ServiceVersion: version.Version}
}
