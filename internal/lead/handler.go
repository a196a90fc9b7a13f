// AngelaMos | 2026
// handler.go

package lead

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leads", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/export", h.Export)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	leads, err := h.service.List(r.Context(), search)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		responses = append(responses, ToLeadResponse(&leads[i]))
	}

	core.OK(w, LeadListResponse{Leads: responses, Total: len(responses)})
}

// Export streams the currently filtered leads as CSV. The same search
// parameter as List applies, so the download matches what the table shows.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	leads, err := h.service.List(r.Context(), search)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	body := ExportCSV(leads)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="`+ExportFilename(time.Now())+`"`,
	)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response write
	_, _ = w.Write(body)
}
