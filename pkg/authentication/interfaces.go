// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/notes-service/internal/types"
)

type TokenServiceInterface interface {
	Issue(ctx context.Context, c Claims, ttl time.Duration) (string, error)
	Verify(ctx context.Context, raw string) (*Claims, error)
}

type TokenVerifierInterface interface {
	Verify(ctx context.Context, raw string) (*Claims, error)
}

type PasswordHasherInterface interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, encoded string) (bool, error)
}

type ResolverInterface interface {
	// Resolve rebuilds the principal of verified claims from the store
	Resolve(ctx context.Context, c *Claims) (*types.Principal, error)
}

type StorageInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
}

type LimiterInterface interface {
	// Allowed reports whether key may still attempt a login
	Allowed(ctx context.Context, key string) (bool, error)
	// Fail records a failed attempt and returns the attempts in the current window
	Fail(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

type ServiceInterface interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
