// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
)

func newSQLMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })

	d := new(DBClient)
	d.db = sqlDB
	d.tracer = tracing.NewNoopTracer()
	d.monitor = monitoring.NewNoopMonitor("notes-service")
	d.logger = logging.NewNoopLogger()

	return d, mock
}

func TestWithTx_FailedBeginNeverFallsBackToPool(t *testing.T) {
	d, mock := newSQLMockClient(t)

	beginErr := errors.New("pool exhausted")
	mock.ExpectBegin().WillReturnError(beginErr)

	var lockErr, countErr error

	err := d.WithTx(context.Background(), func(txCtx context.Context) error {
		var id string
		lockErr = d.Statement(txCtx).
			Select("id").
			From("tenants").
			Where(sq.Eq{"id": "acme"}).
			Suffix("FOR UPDATE").
			QueryRowContext(txCtx).
			Scan(&id)

		// a second statement must not retry the begin nor reach the pool
		_, countErr = d.Statement(txCtx).
			Insert("notes").
			Columns("id").
			Values("n1").
			ExecContext(txCtx)

		return nil
	})

	if !errors.Is(err, beginErr) {
		t.Errorf("expected WithTx to report the begin failure, got %v", err)
	}

	if !errors.Is(lockErr, beginErr) {
		t.Errorf("expected the locking select to fail with the begin error, got %v", lockErr)
	}

	if !errors.Is(countErr, beginErr) {
		t.Errorf("expected the insert to fail with the begin error, got %v", countErr)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected statements ran: %v", err)
	}
}

func TestWithTx_StatementsShareTheTransaction(t *testing.T) {
	d, mock := newSQLMockClient(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM tenants WHERE id = (.+) FOR UPDATE").
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("acme"))
	mock.ExpectExec("INSERT INTO notes").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := d.WithTx(context.Background(), func(txCtx context.Context) error {
		var id string
		if err := d.Statement(txCtx).
			Select("id").
			From("tenants").
			Where(sq.Eq{"id": "acme"}).
			Suffix("FOR UPDATE").
			QueryRowContext(txCtx).
			Scan(&id); err != nil {
			return err
		}

		_, err := d.Statement(txCtx).Insert("notes").Columns("id").Values("n1").ExecContext(txCtx)
		return err
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
