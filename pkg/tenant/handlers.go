// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/notes-service/internal/authorization"
	httptypes "github.com/canonical/notes-service/internal/http/types"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
	"github.com/canonical/notes-service/pkg/authentication"
)

const upgradedMessage = "Tenant upgraded to Pro plan successfully"

type TenantResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Plan      types.Plan `json:"plan"`
	CreatedAt time.Time  `json:"created_at"`
}

type UpgradeResponse struct {
	Plan    types.Plan `json:"plan"`
	Message string     `json:"message"`
}

type API struct {
	service ServiceInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/tenants/current", a.handleCurrent)
	router.Post("/tenants/upgrade", a.handleUpgrade)
}

func (a *API) handleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleCurrent")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	t, err := a.service.Current(ctx, principal)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, TenantResponse{ID: t.ID, Name: t.Name, Plan: t.Plan, CreatedAt: t.CreatedAt})
}

func (a *API) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleUpgrade")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	if d := a.authz.CanUpgradeTenantPlan(ctx, principal); !d.Allowed() {
		httptypes.WriteError(w, a.logger, d.Err())
		return
	}

	plan, err := a.service.Upgrade(ctx, principal.TenantID)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	a.logger.Security().AuthzAdmin(principal.Username, authorization.ActionUpgradePlan)

	httptypes.WriteJSON(w, http.StatusOK, UpgradeResponse{Plan: plan, Message: upgradedMessage})
}

func NewAPI(service ServiceInterface, authz AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.authz = authz
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
