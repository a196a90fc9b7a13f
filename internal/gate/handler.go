// AngelaMos | 2026
// handler.go

package gate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/view/{linkID}", h.Resolve)
	r.Post("/view/{linkID}/unlock", h.Unlock)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")
	sessionID := middleware.GetSessionID(r.Context())

	view, err := h.service.Resolve(r.Context(), sessionID, linkID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	writeView(w, view)
}

func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "linkID")
	sessionID := middleware.GetSessionID(r.Context())

	var req UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	view, err := h.service.Unlock(r.Context(), sessionID, linkID, req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	writeView(w, view)
}

// writeView maps the gate state to a status code: the unavailable view is
// a 404 so crawlers and clients treat dead links as gone, but the body is
// still the regular view payload rather than an error.
func writeView(w http.ResponseWriter, view *View) {
	status := http.StatusOK
	if view.Status == StatusUnavailable {
		status = http.StatusNotFound
	}

	core.JSON(w, status, view)
}
