// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/notes-service/internal/types"
)

// PlanReaderInterface resolves the current plan of a tenant.
type PlanReaderInterface interface {
	GetPlan(ctx context.Context, tenantID string) (types.Plan, error)
}

// NoteCounterInterface counts the notes stored for a tenant.
type NoteCounterInterface interface {
	CountNotes(ctx context.Context, tenantID string) (int64, error)
}
