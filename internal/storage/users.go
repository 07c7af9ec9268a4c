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

var userColumns = []string{"id", "username", "password_hash", "role", "tenant_id", "name", "plan", "created_at"}

func scanUser(row scanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.TenantID, &u.Name, &u.Plan, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	plan := u.Plan
	if plan == "" {
		plan = types.PlanFree
	}

	user, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "username", "password_hash", "role", "tenant_id", "name", "plan").
			Values(id.String(), u.Username, u.PasswordHash, u.Role, u.TenantID, u.Name, plan).
			Suffix("RETURNING id, username, password_hash, role, tenant_id, name, plan, created_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapConstraintError(err, "insert user")
	}

	return user, nil
}

// GetUserByUsername looks a user up across tenants, usernames are globally unique.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByUsername")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"username": username}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) ListMembers(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"tenant_id": tenantID, "role": types.RoleMember}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CountMembers(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMembers")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"tenant_id": tenantID, "role": types.RoleMember}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

// UpdateMemberPlan only ever touches member rows of tenantID.
func (s *Storage) UpdateMemberPlan(ctx context.Context, tenantID, id string, plan types.Plan) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberPlan")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("plan", plan).
		Where(sq.Eq{"id": id, "tenant_id": tenantID, "role": types.RoleMember}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member plan: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
