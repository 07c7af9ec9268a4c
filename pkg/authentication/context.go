// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/notes-service/internal/types"
)

type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the principal of the current request.
func WithPrincipal(ctx context.Context, p *types.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// GetPrincipal retrieves the principal from the context.
// Returns nil and false if the request was not authenticated.
func GetPrincipal(ctx context.Context) (*types.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*types.Principal)
	return p, ok && p != nil
}
