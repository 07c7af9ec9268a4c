// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/canonical/notes-service/internal/db"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
)

func resolveDSN() (string, error) {
	if dsn != "" {
		return dsn, nil
	}

	if env := os.Getenv("DSN"); env != "" {
		return env, nil
	}

	return "", fmt.Errorf("no database configured, pass --dsn or set DSN")
}

// openStorage connects operator commands straight to the database.
// The returned close func must be called once the command is done.
func openStorage() (*storage.Storage, *logging.Logger, func(), error) {
	connString, err := resolveDSN()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.NewLogger(logLevel)
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("notes-service")

	dbClient, err := db.NewDBClient(db.Config{DSN: connString, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create database client: %w", err)
	}

	closer := func() {
		dbClient.Close()
		logger.Sync()
	}

	return storage.NewStorage(dbClient, tracer, monitor, logger), logger, closer, nil
}
