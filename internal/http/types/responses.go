// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/storage"
)

const internalErrorMessage = "internal server error"

// ErrorResponse is the body of every non 2xx answer.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFromError maps the error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, authorization.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, authorization.ErrQuotaExceeded), errors.Is(err, storage.ErrQuotaExceeded):
		return http.StatusForbidden
	case errors.Is(err, authorization.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, authorization.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, authorization.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, authorization.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders err as an ErrorResponse. Internal errors are logged and
// answered with a generic message so storage details never reach the caller.
func WriteError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	status := StatusFromError(err)

	message := internalErrorMessage
	switch {
	case status == http.StatusInternalServerError:
		logger.Errorf("request failed: %v", err)
	case errors.Is(err, storage.ErrQuotaExceeded) && !errors.Is(err, authorization.ErrQuotaExceeded):
		message = authorization.ReasonQuotaReached
	case errors.Is(err, storage.ErrNotFound) && !errors.Is(err, authorization.ErrNotFound):
		message = "resource not found"
	default:
		message = authorization.Reason(err, internalErrorMessage)
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}
