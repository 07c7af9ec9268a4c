// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/notes-service/internal/authorization"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/storage"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) List(ctx context.Context, p *types.Principal, page, size int64) ([]*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.List")
	defer span.End()

	if d := s.authz.CanListNotes(ctx, p); !d.Allowed() {
		return nil, d.Err()
	}

	return s.storage.ListNotes(ctx, p.TenantID, page, size)
}

func (s *Service) Get(ctx context.Context, p *types.Principal, id string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Get")
	defer span.End()

	note, err := s.lookup(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if d := s.authz.CanReadNote(ctx, p, note); !d.Allowed() {
		return nil, d.Err()
	}

	return note, nil
}

// Create stamps tenant and owner from the principal. The storage insert
// re-checks the quota under the tenant row lock when the decision carries a limit.
func (s *Service) Create(ctx context.Context, p *types.Principal, title, content string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Create")
	defer span.End()

	d, err := s.authz.CanCreateNote(ctx, p)
	if err != nil {
		return nil, err
	}

	if !d.Allowed() {
		return nil, d.Err()
	}

	span.SetAttributes(attribute.Int64("note_limit", d.NoteLimit))

	note, err := s.storage.CreateNote(
		ctx,
		&types.Note{
			Title:    title,
			Content:  content,
			TenantID: p.TenantID,
			Owner:    p.Username,
		},
		d.NoteLimit,
	)
	if errors.Is(err, storage.ErrQuotaExceeded) {
		return nil, authorization.NewError(authorization.ErrQuotaExceeded, authorization.ReasonQuotaReached)
	}

	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *Service) Update(ctx context.Context, p *types.Principal, id, title, content string) (*types.Note, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Update")
	defer span.End()

	note, err := s.lookup(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if d := s.authz.CanMutateNote(ctx, p, note, authorization.ActionUpdateNote); !d.Allowed() {
		return nil, d.Err()
	}

	// tenant and owner are carried over from the stored row
	note.Title = title
	note.Content = content

	updated, err := s.storage.UpdateNote(ctx, note)
	if err != nil {
		return nil, s.notFoundOr(err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, p *types.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "notes.Service.Delete")
	defer span.End()

	note, err := s.lookup(ctx, p, id)
	if err != nil {
		return err
	}

	if d := s.authz.CanMutateNote(ctx, p, note, authorization.ActionDeleteNote); !d.Allowed() {
		return d.Err()
	}

	if err := s.storage.DeleteNote(ctx, note.TenantID, note.ID); err != nil {
		return s.notFoundOr(err)
	}

	return nil
}

// lookup reads the note within the principal tenant. A missing note yields nil
// so the authorizer decides the outcome, which is the same for absent and foreign notes.
func (s *Service) lookup(ctx context.Context, p *types.Principal, id string) (*types.Note, error) {
	if p == nil {
		return nil, authorization.NewError(authorization.ErrUnauthenticated, "authentication required")
	}

	note, err := s.storage.GetNote(ctx, p.TenantID, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to look up note %s: %w", id, err)
	}

	return note, nil
}

func (s *Service) notFoundOr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return authorization.NewError(authorization.ErrNotFound, "note not found")
	}

	return err
}

func NewService(storage StorageInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)
	s.storage = storage
	s.authz = authz
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
