// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// failedRunner answers every statement with the error that prevented the
// transaction from opening.
type failedRunner struct {
	err error
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...any) error {
	return r.err
}

func (f failedRunner) Exec(string, ...any) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) Query(string, ...any) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) QueryRow(string, ...any) sq.RowScanner {
	return failedRow(f)
}

func (f failedRunner) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return failedRow(f)
}
