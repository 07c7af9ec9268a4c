// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/notes-service/internal/authorization"
	httptypes "github.com/canonical/notes-service/internal/http/types"
	"github.com/canonical/notes-service/internal/logging"
	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PrincipalResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Role     types.Role `json:"role"`
	TenantID string     `json:"tenant_id"`
	Name     string     `json:"name"`
	Plan     types.Plan `json:"plan"`
}

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int64             `json:"expires_in"`
	User        PrincipalResponse `json:"user"`
}

func NewPrincipalResponse(p *types.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:       p.ID,
		Username: p.Username,
		Role:     p.Role,
		TenantID: p.TenantID,
		Name:     p.Name,
		Plan:     p.Plan,
	}
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/auth/login", a.handleLogin)
}

// handleLogin accepts a JSON body or an OAuth2 password grant form.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogin")
	defer span.End()

	req, err := a.parseLoginRequest(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	result, err := a.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	httptypes.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
		User:        NewPrincipalResponse(result.Principal),
	})
}

func (a *API) parseLoginRequest(r *http.Request) (*LoginRequest, error) {
	req := new(LoginRequest)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, authorization.NewError(authorization.ErrInvalid, "malformed form body")
		}

		if grant := r.PostForm.Get("grant_type"); grant != "" && grant != "password" {
			return nil, authorization.NewError(authorization.ErrInvalid, "unsupported grant type")
		}

		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	} else if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, authorization.NewError(authorization.ErrInvalid, "malformed request body")
	}

	if err := a.validator.Struct(req); err != nil {
		return nil, authorization.NewError(authorization.ErrInvalid, "username and password are required")
	}

	return req, nil
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.validator = validator.New(validator.WithRequiredStructEnabled())
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
