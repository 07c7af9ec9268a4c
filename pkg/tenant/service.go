// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

const reasonTenantNotFound = "tenant not found"

// Service owns tenant plans. The tenant row is the only source of truth for a plan.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetPlan(ctx context.Context, tenantID string) (types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetPlan")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return "", s.notFoundOr(err)
	}

	return t.Plan, nil
}

// Upgrade moves a tenant to pro. Upgrading a pro tenant is a no-op that still
// reports pro, so only the first call performs a transition.
func (s *Service) Upgrade(ctx context.Context, tenantID string) (types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Upgrade")
	defer span.End()

	changed, err := s.storage.UpgradeTenantPlan(ctx, tenantID, types.PlanPro)
	if err != nil {
		return "", s.notFoundOr(err)
	}

	span.SetAttributes(attribute.Bool("changed", changed))

	if changed {
		s.logger.Infof("tenant %s upgraded to %s", tenantID, types.PlanPro)
	}

	return types.PlanPro, nil
}

// SetMemberPlan updates the cached plan of a member. Admin targets never match.
func (s *Service) SetMemberPlan(ctx context.Context, tenantID, memberID string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetMemberPlan")
	defer span.End()

	if !plan.Valid() {
		return authorization.NewError(authorization.ErrInvalid, "unknown plan")
	}

	if err := s.storage.UpdateMemberPlan(ctx, tenantID, memberID, plan); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return authorization.NewError(authorization.ErrNotFound, "user not found")
		}
		return err
	}

	return nil
}

func (s *Service) Current(ctx context.Context, p *types.Principal) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Current")
	defer span.End()

	if p == nil {
		return nil, authorization.NewError(authorization.ErrUnauthenticated, "authentication required")
	}

	t, err := s.storage.GetTenantByID(ctx, p.TenantID)
	if err != nil {
		return nil, s.notFoundOr(err)
	}

	return t, nil
}

// CreateTenant provisions a tenant, an empty id lets the store generate one.
func (s *Service) CreateTenant(ctx context.Context, id, name string, plan types.Plan) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		return nil, authorization.NewError(authorization.ErrInvalid, "tenant name is required")
	}

	if plan == "" {
		plan = types.PlanFree
	}

	if !plan.Valid() {
		return nil, authorization.NewError(authorization.ErrInvalid, "unknown plan")
	}

	t, err := s.storage.CreateTenant(ctx, &types.Tenant{ID: id, Name: name, Plan: plan})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant %s: %w", name, err)
	}

	return t, nil
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) notFoundOr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return authorization.NewError(authorization.ErrNotFound, reasonTenantNotFound)
	}

	return err
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.storage = storage
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
