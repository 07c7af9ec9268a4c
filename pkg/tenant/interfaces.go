// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/types"
)

type ServiceInterface interface {
	GetPlan(ctx context.Context, tenantID string) (types.Plan, error)
	Upgrade(ctx context.Context, tenantID string) (types.Plan, error)
	SetMemberPlan(ctx context.Context, tenantID, memberID string, plan types.Plan) error
	Current(ctx context.Context, p *types.Principal) (*types.Tenant, error)
	CreateTenant(ctx context.Context, id, name string, plan types.Plan) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpgradeTenantPlan(ctx context.Context, id string, plan types.Plan) (bool, error)
	UpdateMemberPlan(ctx context.Context, tenantID, id string, plan types.Plan) error
}

type AuthorizerInterface interface {
	CanUpgradeTenantPlan(ctx context.Context, p *types.Principal) authorization.Decision
}
