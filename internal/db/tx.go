// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type txContextKey struct{}

// txHandle carries a transaction through a request.
// The transaction is only opened when a statement first needs it, so requests
// that never touch the database never hold a connection.
type txHandle struct {
	begin  func() (TxInterface, context.CancelFunc, error)
	tx     TxInterface
	cancel context.CancelFunc
	err    error
	done   bool
}

func (h *txHandle) get() (TxInterface, error) {
	if h.tx != nil {
		return h.tx, nil
	}

	if h.err != nil {
		return nil, h.err
	}

	if h.done {
		return nil, sql.ErrTxDone
	}

	if h.begin == nil {
		return nil, nil
	}

	tx, cancel, err := h.begin()
	if err != nil {
		// statements after a failed begin must not run outside the transaction
		h.err = err
		return nil, err
	}

	h.tx = tx
	h.cancel = cancel

	return tx, nil
}

// end commits or rolls back the transaction if one was opened.
func (h *txHandle) end(commit bool) error {
	if h.done {
		return nil
	}
	h.done = true

	if h.cancel != nil {
		defer h.cancel()
	}

	if h.tx == nil {
		return nil
	}

	if commit {
		if err := h.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	if err := h.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

func handleFromContext(ctx context.Context) *txHandle {
	h, _ := ctx.Value(txContextKey{}).(*txHandle)
	return h
}

func contextWithHandle(ctx context.Context, h *txHandle) context.Context {
	return context.WithValue(ctx, txContextKey{}, h)
}

// ContextWithTx attaches an already open transaction to ctx.
func ContextWithTx(ctx context.Context, tx TxInterface) context.Context {
	return contextWithHandle(ctx, &txHandle{tx: tx})
}

// TxFromContext returns the transaction carried by ctx, opening it on first use.
// A nil transaction with a nil error means ctx carries none.
func TxFromContext(ctx context.Context) (TxInterface, error) {
	h := handleFromContext(ctx)
	if h == nil {
		return nil, nil
	}

	return h.get()
}

// InTx reports whether ctx already carries a transaction, opened or pending.
func InTx(ctx context.Context) bool {
	return handleFromContext(ctx) != nil
}

// RunInTx is the shared WithTx implementation: fn joins the transaction carried
// by ctx when there is one, otherwise begin is used lazily and the outcome of fn
// decides between commit and rollback.
func RunInTx(ctx context.Context, begin func() (TxInterface, context.CancelFunc, error), fn func(context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	h := &txHandle{begin: begin}

	if err := fn(contextWithHandle(ctx, h)); err != nil {
		if rbErr := h.end(false); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	// fn may have swallowed a statement error, a failed begin still fails the unit
	if h.err != nil {
		_ = h.end(false)
		return h.err
	}

	return h.end(true)
}
