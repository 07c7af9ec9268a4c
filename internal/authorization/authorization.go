// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

// Authorizer decides whether a principal may perform an operation in its tenant.
// It holds no state between calls, every decision is computed from its inputs
// and from fresh store reads.
type Authorizer struct {
	plans PlanReaderInterface
	notes NoteCounterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CanListNotes allows any authenticated principal, the listing itself is tenant scoped.
func (a *Authorizer) CanListNotes(ctx context.Context, p *types.Principal) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanListNotes")
	defer span.End()

	if p == nil {
		return a.record(ActionListNotes, p, deny(ErrUnauthenticated, reasonMissingPrincipal))
	}

	return a.record(ActionListNotes, p, allow())
}

// CanReadNote hides notes of other tenants behind a not found outcome.
func (a *Authorizer) CanReadNote(ctx context.Context, p *types.Principal, note *types.Note) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanReadNote")
	defer span.End()

	if p == nil {
		return a.record(ActionReadNote, p, deny(ErrUnauthenticated, reasonMissingPrincipal))
	}

	if note == nil || note.TenantID != p.TenantID {
		return a.record(ActionReadNote, p, notFound(reasonNoteNotFound))
	}

	return a.record(ActionReadNote, p, allow())
}

// CanCreateNote checks the plan quota of the principal tenant.
// Admins and pro tenants are never capped. For free tenants the returned
// decision carries the limit the insert has to enforce under lock.
func (a *Authorizer) CanCreateNote(ctx context.Context, p *types.Principal) (Decision, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanCreateNote")
	defer span.End()

	if p == nil {
		return a.record(ActionCreateNote, p, deny(ErrUnauthenticated, reasonMissingPrincipal)), nil
	}

	if p.IsAdmin() {
		return a.record(ActionCreateNote, p, allow()), nil
	}

	plan, err := a.plans.GetPlan(ctx, p.TenantID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to resolve plan of tenant %s: %w", p.TenantID, err)
	}

	span.SetAttributes(attribute.String("plan", string(plan)))

	if plan == types.PlanPro {
		return a.record(ActionCreateNote, p, allow()), nil
	}

	count, err := a.notes.CountNotes(ctx, p.TenantID)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count notes of tenant %s: %w", p.TenantID, err)
	}

	if count >= FreePlanNoteLimit {
		return a.record(ActionCreateNote, p, deny(ErrQuotaExceeded, ReasonQuotaReached)), nil
	}

	d := allow()
	d.NoteLimit = FreePlanNoteLimit

	return a.record(ActionCreateNote, p, d), nil
}

// CanMutateNote applies the ownership rule for updates and deletes.
// Members may only touch their own notes, admins any note of their tenant.
func (a *Authorizer) CanMutateNote(ctx context.Context, p *types.Principal, note *types.Note, action string) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanMutateNote")
	defer span.End()

	if p == nil {
		return a.record(action, p, deny(ErrUnauthenticated, reasonMissingPrincipal))
	}

	if note == nil || note.TenantID != p.TenantID {
		return a.record(action, p, notFound(reasonNoteNotFound))
	}

	if p.IsAdmin() || note.Owner == p.Username {
		return a.record(action, p, allow())
	}

	return a.record(action, p, deny(ErrForbidden, reasonNotOwner(action)))
}

// CanUpgradeTenantPlan allows admins to upgrade their own tenant.
func (a *Authorizer) CanUpgradeTenantPlan(ctx context.Context, p *types.Principal) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanUpgradeTenantPlan")
	defer span.End()

	return a.record(ActionUpgradePlan, p, a.adminOnly(p))
}

// CanManageUsers allows admins to manage the users of their own tenant.
func (a *Authorizer) CanManageUsers(ctx context.Context, p *types.Principal) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageUsers")
	defer span.End()

	return a.record(ActionManageUsers, p, a.adminOnly(p))
}

// CanChangeMemberPlan validates a plan change of target requested by p.
func (a *Authorizer) CanChangeMemberPlan(ctx context.Context, p *types.Principal, target *types.User, newPlan types.Plan) Decision {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanChangeMemberPlan")
	defer span.End()

	if d := a.adminOnly(p); !d.Allowed() {
		return a.record(ActionChangeMemberPlan, p, d)
	}

	if target == nil || target.TenantID != p.TenantID {
		return a.record(ActionChangeMemberPlan, p, notFound(reasonUserNotFound))
	}

	if target.Role != types.RoleMember {
		return a.record(ActionChangeMemberPlan, p, invalid(reasonNotMember))
	}

	if !newPlan.Valid() {
		return a.record(ActionChangeMemberPlan, p, invalid(reasonUnknownPlan))
	}

	return a.record(ActionChangeMemberPlan, p, allow())
}

func (a *Authorizer) adminOnly(p *types.Principal) Decision {
	if p == nil {
		return deny(ErrUnauthenticated, reasonMissingPrincipal)
	}

	if !p.IsAdmin() {
		return deny(ErrForbidden, reasonAdminOnly)
	}

	return allow()
}

func (a *Authorizer) record(action string, p *types.Principal, d Decision) Decision {
	if err := a.monitor.IncAuthorizationDecision(map[string]string{"action": action, "effect": d.Effect.String()}); err != nil {
		a.logger.Debugf("failed to record authorization decision: %v", err)
	}

	if d.Allowed() || p == nil {
		return d
	}

	a.logger.Security().AuthzFailure(p.Username, action)

	return d
}

func NewAuthorizer(plans PlanReaderInterface, notes NoteCounterInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)
	a.plans = plans
	a.notes = notes
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
