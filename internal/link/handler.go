// AngelaMos | 2026
// handler.go

package link

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gatekeep-app/gatekeep/internal/core"
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
	r.Route("/links", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{linkID}", h.Get)
		r.Delete("/{linkID}", h.Delete)
		r.Post("/{linkID}/views", h.TrackView)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]LinkResponse, 0, len(links))
	for i := range links {
		responses = append(
			responses,
			ToLinkResponse(&links[i], h.service.ShareURL(links[i].ID)),
		)
	}

	core.OK(w, LinkListResponse{Links: responses})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "linkID")

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "link")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLinkResponse(l, h.service.ShareURL(l.ID)))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	l, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToLinkResponse(l, h.service.ShareURL(l.ID)))
}

// Delete removes the link outright. Deleting an id that does not exist is
// not an error; the outcome is the same either way.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "linkID")

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) TrackView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "linkID")

	if err := h.service.TrackView(r.Context(), id); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
