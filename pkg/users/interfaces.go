// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/types"
)

type ServiceInterface interface {
	Invite(ctx context.Context, p *types.Principal, email, role, tenantID string) (*Invitation, error)
	ListMembers(ctx context.Context, p *types.Principal) ([]*types.User, error)
	CountMembers(ctx context.Context, p *types.Principal) (int64, error)
	ChangeMemberPlan(ctx context.Context, p *types.Principal, userID, newPlan string) (*types.User, types.Plan, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error)
	ListMembers(ctx context.Context, tenantID string) ([]*types.User, error)
	CountMembers(ctx context.Context, tenantID string) (int64, error)
}

type AuthorizerInterface interface {
	CanManageUsers(ctx context.Context, p *types.Principal) authorization.Decision
	CanChangeMemberPlan(ctx context.Context, p *types.Principal, target *types.User, newPlan types.Plan) authorization.Decision
}

type PlanManagerInterface interface {
	SetMemberPlan(ctx context.Context, tenantID, memberID string, plan types.Plan) error
}

type PasswordHasherInterface interface {
	Hash(ctx context.Context, password string) (string, error)
}
