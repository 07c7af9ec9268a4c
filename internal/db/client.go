// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
)

// txTimeout bounds how long a request scoped transaction may stay open.
const txTimeout = 30 * time.Second

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

type DBClient struct {
	// pool owns the connections, db is the database/sql view squirrel runs on
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) builder(runner sq.BaseRunner) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(runner)
}

// Statement returns a query builder bound to the transaction in ctx when there
// is one, so storage code does not need to know whether it runs inside a request
// transaction. When the transaction cannot be opened every statement built from
// the returned builder fails with that error instead of running on the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	tx, err := TxFromContext(ctx)
	if err != nil {
		d.logger.Errorf("failed to open transaction: %v", err)
		return d.builder(failedRunner{err: err})
	}

	if tx != nil {
		return d.builder(tx)
	}

	return d.builder(d.db)
}

func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return RunInTx(ctx, d.begin, fn)
}

// begin opens a read committed transaction detached from the request context,
// a cancelled client must not abort a commit that is already under way.
func (d *DBClient) begin() (TxInterface, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)

	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return tx, cancel, nil
}

// Ping checks the database is reachable and records the outcome as dependency availability.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	tags := map[string]string{"component": "postgres"}

	if err := d.db.PingContext(ctx); err != nil {
		_ = d.monitor.SetDependencyAvailability(tags, 0)
		return err
	}

	_ = d.monitor.SetDependencyAvailability(tags, 1)
	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg and verifies the database answers.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	if cfg.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record pool stats: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
