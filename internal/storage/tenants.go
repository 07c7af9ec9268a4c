// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/notes-service/internal/types"
)

var tenantColumns = []string{"id", "name", "plan", "created_at"}

func scanTenant(row scanner) (*types.Tenant, error) {
	var t types.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Plan, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant inserts a tenant, a missing ID is replaced by a fresh UUIDv7.
func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id := t.ID
	if id == "" {
		uid, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
		}
		id = uid.String()
	}

	plan := t.Plan
	if plan == "" {
		plan = types.PlanFree
	}

	tenant, err := scanTenant(
		s.db.Statement(ctx).
			Insert("tenants").
			Columns("id", "name", "plan").
			Values(id, t.Name, plan).
			Suffix("RETURNING id, name, plan, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapConstraintError(err, "insert tenant")
	}

	return tenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	t, err := scanTenant(
		s.db.Statement(ctx).
			Select(tenantColumns...).
			From("tenants").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpgradeTenantPlan moves the tenant to plan and reports whether a row changed.
// A tenant already on plan is left untouched.
func (s *Storage) UpgradeTenantPlan(ctx context.Context, id string, plan types.Plan) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpgradeTenantPlan")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("plan", plan).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"plan": plan}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update tenant plan: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		return true, nil
	}

	if _, err := s.GetTenantByID(ctx, id); err != nil {
		return false, err
	}

	return false, nil
}
