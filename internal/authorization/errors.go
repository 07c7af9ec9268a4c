// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
)

// Sentinel errors every policy outcome maps to.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrInvalid         = errors.New("invalid request")
	ErrTooManyAttempts = errors.New("too many attempts")
)

// DeniedError carries a user facing reason on top of one of the sentinel errors.
type DeniedError struct {
	Kind   error
	Reason string
}

func (e *DeniedError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Reason
}

func (e *DeniedError) Unwrap() error {
	return e.Kind
}

// NewError wraps kind with a reason that is safe to show to the caller.
func NewError(kind error, reason string) error {
	return &DeniedError{Kind: kind, Reason: reason}
}

// Reason returns the caller facing message of err, falling back to fallback
// for anything that is not a policy outcome.
func Reason(err error, fallback string) string {
	var denied *DeniedError
	if errors.As(err, &denied) {
		return denied.Error()
	}

	for _, kind := range []error{ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrQuotaExceeded, ErrInvalid, ErrTooManyAttempts} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}

	return fallback
}
