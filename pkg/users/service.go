// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

const temporaryPasswordBytes = 12

// Invitation is returned once, the temporary password is not stored in clear.
type Invitation struct {
	User              *types.User
	TemporaryPassword string
}

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	plans   PlanManagerInterface
	hasher  PasswordHasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Invite creates a user in the tenant of the principal. A tenantID naming
// any other tenant is rejected rather than silently rescoped.
func (s *Service) Invite(ctx context.Context, p *types.Principal, email, role, tenantID string) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Invite")
	defer span.End()

	if d := s.authz.CanManageUsers(ctx, p); !d.Allowed() {
		return nil, d.Err()
	}

	r, err := types.ParseRole(role)
	if err != nil {
		return nil, authorization.NewError(authorization.ErrInvalid, "role must be admin or member")
	}

	if tenantID != "" && tenantID != p.TenantID {
		s.logger.Security().AuthzFailure(p.Username, "invite_user:"+tenantID)
		return nil, authorization.NewError(authorization.ErrForbidden, "cannot invite users to another tenant")
	}

	password, err := temporaryPassword()
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	user, err := s.storage.CreateUser(
		ctx,
		&types.User{
			Username:     email,
			PasswordHash: hash,
			Role:         r,
			TenantID:     p.TenantID,
			Name:         displayName(email),
			Plan:         p.Plan,
		},
	)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, authorization.NewError(authorization.ErrInvalid, "user already exists")
	}

	if err != nil {
		return nil, err
	}

	s.logger.Security().UserCreated(user.Username, p.Username)

	return &Invitation{User: user, TemporaryPassword: password}, nil
}

func (s *Service) ListMembers(ctx context.Context, p *types.Principal) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListMembers")
	defer span.End()

	if d := s.authz.CanManageUsers(ctx, p); !d.Allowed() {
		return nil, d.Err()
	}

	return s.storage.ListMembers(ctx, p.TenantID)
}

func (s *Service) CountMembers(ctx context.Context, p *types.Principal) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CountMembers")
	defer span.End()

	if d := s.authz.CanManageUsers(ctx, p); !d.Allowed() {
		return 0, d.Err()
	}

	return s.storage.CountMembers(ctx, p.TenantID)
}

// ChangeMemberPlan checks role, then plan value, then the target, in that order.
func (s *Service) ChangeMemberPlan(ctx context.Context, p *types.Principal, userID, newPlan string) (*types.User, types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ChangeMemberPlan")
	defer span.End()

	if d := s.authz.CanManageUsers(ctx, p); !d.Allowed() {
		return nil, "", d.Err()
	}

	plan, err := types.ParsePlan(newPlan)
	if err != nil {
		return nil, "", authorization.NewError(authorization.ErrInvalid, "unknown plan")
	}

	target, err := s.storage.GetUserByID(ctx, p.TenantID, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to look up user %s: %w", userID, err)
	}

	if d := s.authz.CanChangeMemberPlan(ctx, p, target, plan); !d.Allowed() {
		return nil, "", d.Err()
	}

	if err := s.plans.SetMemberPlan(ctx, p.TenantID, target.ID, plan); err != nil {
		return nil, "", err
	}

	s.logger.Security().AuthzAdmin(p.Username, authorization.ActionChangeMemberPlan)

	return target, plan, nil
}

func temporaryPassword() (string, error) {
	b := make([]byte, temporaryPasswordBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate temporary password: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func displayName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	plans PlanManagerInterface,
	hasher PasswordHasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.storage = storage
	s.authz = authz
	s.plans = plans
	s.hasher = hasher
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
