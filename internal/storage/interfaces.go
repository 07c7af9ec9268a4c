// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/notes-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpgradeTenantPlan(ctx context.Context, id string, plan types.Plan) (bool, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error)
	ListMembers(ctx context.Context, tenantID string) ([]*types.User, error)
	CountMembers(ctx context.Context, tenantID string) (int64, error)
	UpdateMemberPlan(ctx context.Context, tenantID, id string, plan types.Plan) error

	ListNotes(ctx context.Context, tenantID string, page, size int64) ([]*types.Note, error)
	GetNote(ctx context.Context, tenantID, id string) (*types.Note, error)
	CountNotes(ctx context.Context, tenantID string) (int64, error)
	CreateNote(ctx context.Context, n *types.Note, limit int64) (*types.Note, error)
	UpdateNote(ctx context.Context, n *types.Note) (*types.Note, error)
	DeleteNote(ctx context.Context, tenantID, id string) error
}
