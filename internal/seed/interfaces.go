// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"

	"github.com/canonical/notes-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
}

type PasswordHasherInterface interface {
	Hash(ctx context.Context, password string) (string, error)
}
