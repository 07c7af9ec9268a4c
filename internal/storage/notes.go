// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/notes-service/internal/db"
	"github.com/canonical/notes-service/internal/types"
)

var noteColumns = []string{"id", "title", "content", "tenant_id", "owner", "created_at", "updated_at"}

func scanNote(row scanner) (*types.Note, error) {
	var n types.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.TenantID, &n.Owner, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Storage) ListNotes(ctx context.Context, tenantID string, page, size int64) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotes")
	defer span.End()

	limit, offset := db.Paginate(page, size)

	rows, err := s.db.Statement(ctx).
		Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at", "id").
		Limit(limit).
		Offset(offset).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*types.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

// GetNote returns ErrNotFound both for missing notes and for notes of another tenant.
func (s *Storage) GetNote(ctx context.Context, tenantID, id string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNote")
	defer span.End()

	n, err := scanNote(
		s.db.Statement(ctx).
			Select(noteColumns...).
			From("notes").
			Where(sq.Eq{"id": id, "tenant_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return n, nil
}

func (s *Storage) CountNotes(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountNotes")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}

// CreateNote inserts n unless the tenant already holds limit notes.
// The tenant row is locked for the duration of the transaction so concurrent
// creates for the same tenant are serialized. A limit of 0 disables the check.
func (s *Storage) CreateNote(ctx context.Context, n *types.Note, limit int64) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNote")
	defer span.End()

	span.SetAttributes(attribute.Int64("limit", limit))

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate note ID: %w", err)
	}

	var note *types.Note
	err = s.db.WithTx(ctx, func(txCtx context.Context) error {
		var tenantID string
		err := s.db.Statement(txCtx).
			Select("id").
			From("tenants").
			Where(sq.Eq{"id": n.TenantID}).
			Suffix("FOR UPDATE").
			QueryRowContext(txCtx).
			Scan(&tenantID)
		if err != nil {
			if isNoRows(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock tenant: %w", err)
		}

		if limit > 0 {
			var count int64
			err := s.db.Statement(txCtx).
				Select("COUNT(*)").
				From("notes").
				Where(sq.Eq{"tenant_id": n.TenantID}).
				QueryRowContext(txCtx).
				Scan(&count)
			if err != nil {
				return fmt.Errorf("failed to count notes: %w", err)
			}

			if count >= limit {
				return ErrQuotaExceeded
			}
		}

		note, err = scanNote(
			s.db.Statement(txCtx).
				Insert("notes").
				Columns("id", "title", "content", "tenant_id", "owner").
				Values(id.String(), n.Title, n.Content, n.TenantID, n.Owner).
				Suffix("RETURNING id, title, content, tenant_id, owner, created_at, updated_at").
				QueryRowContext(txCtx),
		)
		if err != nil {
			return wrapConstraintError(err, "insert note")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

// UpdateNote rewrites title and content only, tenant and owner are immutable.
func (s *Storage) UpdateNote(ctx context.Context, n *types.Note) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateNote")
	defer span.End()

	note, err := scanNote(
		s.db.Statement(ctx).
			Update("notes").
			Set("title", n.Title).
			Set("content", n.Content).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": n.ID, "tenant_id": n.TenantID}).
			Suffix("RETURNING id, title, content, tenant_id, owner, created_at, updated_at").
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (s *Storage) DeleteNote(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNote")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("notes").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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
