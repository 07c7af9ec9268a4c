// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/types"
)

type ServiceInterface interface {
	List(ctx context.Context, p *types.Principal, page, size int64) ([]*types.Note, error)
	Get(ctx context.Context, p *types.Principal, id string) (*types.Note, error)
	Create(ctx context.Context, p *types.Principal, title, content string) (*types.Note, error)
	Update(ctx context.Context, p *types.Principal, id, title, content string) (*types.Note, error)
	Delete(ctx context.Context, p *types.Principal, id string) error
}

type StorageInterface interface {
	ListNotes(ctx context.Context, tenantID string, page, size int64) ([]*types.Note, error)
	GetNote(ctx context.Context, tenantID, id string) (*types.Note, error)
	CreateNote(ctx context.Context, n *types.Note, limit int64) (*types.Note, error)
	UpdateNote(ctx context.Context, n *types.Note) (*types.Note, error)
	DeleteNote(ctx context.Context, tenantID, id string) error
}

type AuthorizerInterface interface {
	CanListNotes(ctx context.Context, p *types.Principal) authorization.Decision
	CanReadNote(ctx context.Context, p *types.Principal, note *types.Note) authorization.Decision
	CanCreateNote(ctx context.Context, p *types.Principal) (authorization.Decision, error)
	CanMutateNote(ctx context.Context, p *types.Principal, note *types.Note, action string) authorization.Decision
}
