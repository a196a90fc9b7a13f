// AngelaMos | 2026
// handler.go

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type StatsResponse struct {
	TotalLeads     int          `json:"total_leads"`
	TotalViews     int64        `json:"total_views"`
	ActiveLinks    int          `json:"active_links"`
	ConversionRate float64      `json:"conversion_rate"`
	TopContent     []TopLink    `json:"top_content"`
	WeeklyTrend    []TrendPoint `json:"weekly_trend"`
}

type TopLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

type TrendPoint struct {
	Name  string `json:"name"`
	Leads int    `json:"leads"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}
