// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/notes-service/internal/logging"
)

type fakeClient struct {
	calls     int
	lastErr   error
	commitErr error
}

func (f *fakeClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder
}

func (f *fakeClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	f.lastErr = RunInTx(ctx, nil, fn)
	if f.lastErr == nil {
		f.lastErr = f.commitErr
	}
	return f.lastErr
}

func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) Close() {}

// fakeTx records how a transaction was finished.
type fakeTx struct {
	sq.BaseRunner

	commits   int
	rollbacks int
}

func (f *fakeTx) Commit() error   { f.commits++; return nil }
func (f *fakeTx) Rollback() error { f.rollbacks++; return nil }

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		page, size     int64
		expectedLimit  uint64
		expectedOffset uint64
	}{
		{name: "defaults", page: 0, size: 0, expectedLimit: DefaultPageSize, expectedOffset: 0},
		{name: "second page", page: 2, size: 10, expectedLimit: 10, expectedOffset: 10},
		{name: "negative page", page: -3, size: 5, expectedLimit: 5, expectedOffset: 0},
		{name: "size capped", page: 3, size: 10000, expectedLimit: MaxPageSize, expectedOffset: 2 * MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := Paginate(tt.page, tt.size)

			if limit != tt.expectedLimit {
				t.Errorf("expected limit %d, got %d", tt.expectedLimit, limit)
			}
			if offset != tt.expectedOffset {
				t.Errorf("expected offset %d, got %d", tt.expectedOffset, offset)
			}
		})
	}
}

func TestRunInTx(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name              string
		touch             bool
		err               error
		expectedCommits   int
		expectedRollbacks int
		expectedBegins    int
	}{
		{name: "untouched transaction is never opened", touch: false, expectedBegins: 0},
		{name: "success commits", touch: true, expectedCommits: 1, expectedBegins: 1},
		{name: "failure rolls back", touch: true, err: failure, expectedRollbacks: 1, expectedBegins: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := new(fakeTx)
			begins := 0

			begin := func() (TxInterface, context.CancelFunc, error) {
				begins++
				return tx, func() {}, nil
			}

			err := RunInTx(context.Background(), begin, func(ctx context.Context) error {
				if !InTx(ctx) {
					t.Error("expected fn to run inside a transaction")
				}

				if tt.touch {
					// a second lookup must reuse the opened transaction
					for range 2 {
						if got, err := TxFromContext(ctx); err != nil || got != tx {
							t.Errorf("unexpected transaction %v, err %v", got, err)
						}
					}
				}

				return tt.err
			})

			if !errors.Is(err, tt.err) {
				t.Errorf("expected error %v, got %v", tt.err, err)
			}
			if begins != tt.expectedBegins {
				t.Errorf("expected %d begins, got %d", tt.expectedBegins, begins)
			}
			if tx.commits != tt.expectedCommits || tx.rollbacks != tt.expectedRollbacks {
				t.Errorf("expected %d commits and %d rollbacks, got %d and %d", tt.expectedCommits, tt.expectedRollbacks, tx.commits, tx.rollbacks)
			}
		})
	}
}

func TestRunInTxJoinsOuterTransaction(t *testing.T) {
	outer := new(fakeTx)
	ctx := ContextWithTx(context.Background(), outer)

	begin := func() (TxInterface, context.CancelFunc, error) {
		t.Error("nested call must not open a new transaction")
		return nil, nil, nil
	}

	err := RunInTx(ctx, begin, func(txCtx context.Context) error {
		tx, err := TxFromContext(txCtx)
		if err != nil || tx != outer {
			t.Errorf("expected the outer transaction, got %v", tx)
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outer.commits != 0 {
		t.Errorf("outer owner commits, got %d nested commits", outer.commits)
	}
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		status         int
		commitErr      error
		expectedStatus int
		expectedBody   string
		expectedCalls  int
		expectErr      bool
	}{
		{name: "GET bypasses transaction", method: http.MethodGet, status: http.StatusOK, expectedStatus: http.StatusOK, expectedBody: "done", expectedCalls: 0},
		{name: "POST success commits", method: http.MethodPost, status: http.StatusCreated, expectedStatus: http.StatusCreated, expectedBody: "done", expectedCalls: 1},
		{name: "POST failure rolls back", method: http.MethodPost, status: http.StatusForbidden, expectedStatus: http.StatusForbidden, expectedBody: "done", expectedCalls: 1, expectErr: true},
		{name: "DELETE success commits", method: http.MethodDelete, status: http.StatusOK, expectedStatus: http.StatusOK, expectedBody: "done", expectedCalls: 1},
		{
			name:           "failed commit replaces the success response",
			method:         http.MethodPost,
			status:         http.StatusCreated,
			commitErr:      errors.New("serialization failure"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":500,"message":"internal server error"}`,
			expectedCalls:  1,
			expectErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{commitErr: tt.commitErr}

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.method != http.MethodGet && !InTx(r.Context()) {
					t.Error("expected handler to run inside a transaction")
				}
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("done"))
			})

			req := httptest.NewRequest(tt.method, "/notes", nil)
			rr := httptest.NewRecorder()

			TransactionMiddleware(client, logging.NewNoopLogger())(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, got)
			}
			if client.calls != tt.expectedCalls {
				t.Errorf("expected %d WithTx calls, got %d", tt.expectedCalls, client.calls)
			}
			if tt.expectErr != (client.lastErr != nil) {
				t.Errorf("expected error %v, got %v", tt.expectErr, client.lastErr)
			}
		})
	}
}
