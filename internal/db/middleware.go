// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/canonical/notes-service/internal/logging"
)

// internalErrorBody mirrors the JSON error envelope of the http types package,
// which cannot be imported from here.
const internalErrorBody = `{"status":500,"message":"internal server error"}`

// bufferedResponse holds the handler's status and body until the transaction outcome is known.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}

	return b.body.Write(p)
}

func (b *bufferedResponse) Status() int {
	if b.status == 0 {
		return http.StatusOK
	}

	return b.status
}

func (b *bufferedResponse) flush(w http.ResponseWriter) {
	w.WriteHeader(b.Status())
	_, _ = w.Write(b.body.Bytes())
}

// TransactionMiddleware wraps each mutating request in a lazily started database transaction.
// The transaction is committed if the handler answers with a status < 400, rolled back otherwise.
// Storage calls made while serving the request join this transaction, so a note insert and
// the tenant row lock guarding the quota commit together.
// The response is held back until the commit returns: a failed commit answers 500 instead
// of the success the handler produced.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			buf := &bufferedResponse{header: w.Header()}

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(buf, r.WithContext(txCtx))

				if buf.Status() >= http.StatusBadRequest {
					return fmt.Errorf("request failed with status %d", buf.Status())
				}

				return nil
			})

			if err == nil || buf.Status() >= http.StatusBadRequest {
				if err != nil {
					logger.Debugf("transaction not committed for %s %s: %v", r.Method, r.URL.Path, err)
				}
				buf.flush(w)
				return
			}

			logger.Errorf("failed to commit transaction for %s %s: %v", r.Method, r.URL.Path, err)

			h := w.Header()
			h.Del("Content-Length")
			h.Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(internalErrorBody + "\n"))
		})
	}
}
