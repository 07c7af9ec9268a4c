// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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

type NoteRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"max=65536"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	TenantID  string    `json:"tenant_id"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IDResponse struct {
	ID string `json:"id"`
}

func newNoteResponse(n *types.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		TenantID:  n.TenantID,
		Owner:     n.Owner,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
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
	router.Get("/notes", a.handleList)
	router.Post("/notes", a.handleCreate)
	router.Get("/notes/{id}", a.handleGet)
	router.Put("/notes/{id}", a.handleUpdate)
	router.Delete("/notes/{id}", a.handleDelete)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.handleList")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	notes, err := a.service.List(ctx, principal, page, size)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, newNoteResponse(n))
	}

	httptypes.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.handleGet")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	note, err := a.service.Get(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, newNoteResponse(note))
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.handleCreate")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req, err := a.parseNoteRequest(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	note, err := a.service.Create(ctx, principal, req.Title, req.Content)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, IDResponse{ID: note.ID})
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.handleUpdate")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)

	req, err := a.parseNoteRequest(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	note, err := a.service.Update(ctx, principal, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, IDResponse{ID: note.ID})
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "notes.API.handleDelete")
	defer span.End()

	principal, _ := authentication.GetPrincipal(ctx)
	id := chi.URLParam(r, "id")

	if err := a.service.Delete(ctx, principal, id); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, IDResponse{ID: id})
}

func (a *API) parseNoteRequest(r *http.Request) (*NoteRequest, error) {
	req := new(NoteRequest)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, authorization.NewError(authorization.ErrInvalid, "malformed request body")
	}

	if err := a.validator.Struct(req); err != nil {
		return nil, authorization.NewError(authorization.ErrInvalid, validationMessage(err))
	}

	return req, nil
}

// validationMessage reports the first failing field without leaking validator output.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	switch verrs[0].Field() {
	case "Title":
		return "title is required and must not exceed 255 characters"
	case "Content":
		return "content must not exceed 65536 characters"
	default:
		return "invalid request"
	}
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
