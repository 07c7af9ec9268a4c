// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/notes-service/internal/authorization"
	httptypes "github.com/canonical/notes-service/internal/http/types"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
	"github.com/canonical/notes-service/pkg/authentication"
)

type InviteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	TenantID string `json:"tenant_id"`
}

type InviteResponse struct {
	Message           string `json:"message"`
	Username          string `json:"username"`
	TemporaryPassword string `json:"temporary_password"`
}

type ChangePlanRequest struct {
	NewPlan string `json:"new_plan" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type MemberCountResponse struct {
	MemberCount int64 `json:"member_count"`
}

type MemberResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Name     string     `json:"name"`
	Role     types.Role `json:"role"`
	TenantID string     `json:"tenant_id"`
	Plan     types.Plan `json:"plan"`
}

type API struct {
	service   ServiceInterface
	authz     AuthorizerInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/users/invite", a.handleInvite)
	router.Get("/users/list-members", a.handleListMembers)
	router.Get("/users/count-members", a.handleCountMembers)
	router.Post("/users/change-plan/{id}", a.handleChangePlan)
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleInvite")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	// non admins learn nothing about the body they sent
	if d := a.authz.CanManageUsers(ctx, principal); !d.Allowed() {
		httptypes.WriteError(w, a.logger, d.Err())
		return
	}

	req := new(InviteRequest)
	if err := a.decode(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	invitation, err := a.service.Invite(ctx, principal, req.Email, req.Role, req.TenantID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(
		w,
		http.StatusCreated,
		InviteResponse{
			Message:           fmt.Sprintf("User invited successfully with email %s", invitation.User.Username),
			Username:          invitation.User.Username,
			TemporaryPassword: invitation.TemporaryPassword,
		},
	)
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleListMembers")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	members, err := a.service.ListMembers(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, MemberResponse{ID: m.ID, Username: m.Username, Name: m.Name, Role: m.Role, TenantID: m.TenantID, Plan: m.Plan})
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleCountMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleCountMembers")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	count, err := a.service.CountMembers(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, MemberCountResponse{MemberCount: count})
}

func (a *API) handleChangePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleChangePlan")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	if d := a.authz.CanManageUsers(ctx, principal); !d.Allowed() {
		httptypes.WriteError(w, a.logger, d.Err())
		return
	}

	req := new(ChangePlanRequest)
	if err := a.decode(r, req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	user, plan, err := a.service.ChangeMemberPlan(ctx, principal, chi.URLParam(r, "id"), req.NewPlan)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Plan changed to %s for user %s", plan, user.Username)})
}

func (a *API) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return authorization.NewError(authorization.ErrInvalid, "malformed request body")
	}

	if err := a.validator.Struct(v); err != nil {
		return authorization.NewError(authorization.ErrInvalid, validationMessage(err))
	}

	return nil
}

// validationMessage reports the first failing field with a fixed message.
func validationMessage(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return "invalid request"
	}

	switch fields[0].Field() {
	case "Email":
		return "email must be a valid email address"
	case "Role":
		return "role is required"
	case "NewPlan":
		return "new_plan is required"
	default:
		return "invalid request"
	}
}

func NewAPI(service ServiceInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.authz = authz
	a.validator = validator.New(validator.WithRequiredStructEnabled())
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
