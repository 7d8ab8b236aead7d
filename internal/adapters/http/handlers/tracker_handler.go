package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

// TrackerHandler serves the roster and per-actor endpoints.
type TrackerHandler struct {
	tracker ports.TrackerService
}

// NewTrackerHandler creates a TrackerHandler over the tracker service port.
func NewTrackerHandler(tracker ports.TrackerService) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// GetRoster handles GET /api/v1/roster.
func (h *TrackerHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToRosterResponse(h.tracker.Snapshot(r.Context())))
}

// CreateActor handles POST /api/v1/actors.
func (h *TrackerHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a, err := h.tracker.Create(r.Context(), req.Title)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if req.Order != nil {
		a, err = h.tracker.SetOrder(r.Context(), a.ID, *req.Order)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	w.Header().Set("Location", "/api/v1/actors/"+a.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToActorResponse(&a))
}

// GetActor handles GET /api/v1/actors/{id}.
func (h *TrackerHandler) GetActor(w http.ResponseWriter, r *http.Request) {
	a, err := h.tracker.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActorResponse(&a))
}

// UpdateActor handles PATCH /api/v1/actors/{id}. Clearing the title removes
// the actor and answers 204.
func (h *TrackerHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateActorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var (
		a   actor.Actor
		err error
	)

	if req.Title != nil {
		var exists bool
		a, exists, err = h.tracker.Rename(r.Context(), id, *req.Title)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		if !exists {
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	if req.Order != nil {
		a, err = h.tracker.SetOrder(r.Context(), id, *req.Order)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	writeJSON(w, r, http.StatusOK, dto.ToActorResponse(&a))
}

// DeleteActor handles DELETE /api/v1/actors/{id}.
func (h *TrackerHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.tracker.Destroy)
}

// ActivateActor handles POST /api/v1/actors/{id}/activate.
func (h *TrackerHandler) ActivateActor(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.tracker.Activate)
}

// SelectActor handles POST /api/v1/actors/{id}/select.
func (h *TrackerHandler) SelectActor(w http.ResponseWriter, r *http.Request) {
	h.noContent(w, r, h.tracker.Select)
}

// AddCondition handles POST /api/v1/actors/{id}/conditions.
func (h *TrackerHandler) AddCondition(w http.ResponseWriter, r *http.Request) {
	var req dto.AddConditionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a, err := h.tracker.AddCondition(r.Context(), chi.URLParam(r, "id"), req.Label)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActorResponse(&a))
}

// RemoveCondition handles DELETE /api/v1/actors/{id}/conditions/{label}.
// Removing a label the actor does not carry is not an error. The label is
// path-unescaped, so labels containing a slash are sent as %2F.
func (h *TrackerHandler) RemoveCondition(w http.ResponseWriter, r *http.Request) {
	label, err := pathLabel(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("label", "must be a valid escaped path segment"))
		return
	}
	h.editActor(w, r, func(ctx context.Context, id string) (actor.Actor, error) {
		return h.tracker.RemoveCondition(ctx, id, label)
	})
}

// ClearConditions handles DELETE /api/v1/actors/{id}/conditions.
func (h *TrackerHandler) ClearConditions(w http.ResponseWriter, r *http.Request) {
	h.editActor(w, r, h.tracker.ClearConditions)
}

// RotateConditions handles POST /api/v1/actors/{id}/conditions/rotate.
func (h *TrackerHandler) RotateConditions(w http.ResponseWriter, r *http.Request) {
	h.editActor(w, r, h.tracker.Rotate)
}

// pathLabel returns the decoded {label} parameter. chi matches on the raw
// path whenever the request carries escapes, leaving the parameter escaped.
func pathLabel(r *http.Request) (string, error) {
	label := chi.URLParam(r, "label")
	if r.URL.RawPath == "" {
		return label, nil
	}
	return url.PathUnescape(label)
}

func (h *TrackerHandler) noContent(w http.ResponseWriter, r *http.Request, op func(context.Context, string) error) {
	if err := op(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrackerHandler) editActor(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, string) (actor.Actor, error),
) {
	a, err := op(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToActorResponse(&a))
}
