// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	// FrontendURL is a comma separated list of origins allowed by CORS
	FrontendURL []string `envconfig:"frontend_url" default:"http://localhost:5173"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	TokenSigningSecret string        `envconfig:"token_signing_secret" required:"true"`
	TokenIssuer        string        `envconfig:"token_issuer" default:"notes-service"`
	TokenTTL           time.Duration `envconfig:"token_ttl" default:"60m"`

	RedisURL           string        `envconfig:"redis_url"`
	LoginMaxAttempts   int           `envconfig:"login_max_attempts" default:"5"`
	LoginAttemptWindow time.Duration `envconfig:"login_attempt_window" default:"15m"`
}
