// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
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

// Resolver turns verified claims into a Principal.
// Role and tenant come from the user row and the plan from the tenant row,
// claims only name the subject. Nothing is cached between requests.
type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Resolver) Resolve(ctx context.Context, c *Claims) (*types.Principal, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.Resolve")
	defer span.End()

	if c == nil || strings.TrimSpace(c.Subject) == "" {
		return nil, authorization.NewError(authorization.ErrUnauthenticated, "missing subject")
	}

	user, err := r.storage.GetUserByUsername(ctx, c.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authorization.NewError(authorization.ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	tenant, err := r.storage.GetTenantByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authorization.NewError(authorization.ErrNotFound, "tenant not found")
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	return principalOf(user, tenant), nil
}

func principalOf(user *types.User, tenant *types.Tenant) *types.Principal {
	return &types.Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		TenantID: user.TenantID,
		Name:     user.Name,
		Plan:     tenant.Plan,
	}
}

func NewResolver(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)
	r.storage = s
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
