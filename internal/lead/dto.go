// AngelaMos | 2026
// dto.go

package lead

import (
	"time"
)

type LeadResponse struct {
	ID          string    `json:"id"`
	LinkID      string    `json:"link_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CapturedAt  time.Time `json:"captured_at"`
	SourceTitle string    `json:"source_title"`
}

type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Total int            `json:"total"`
}

func ToLeadResponse(l *WithSource) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		LinkID:      l.LinkID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		CapturedAt:  l.CapturedAt,
		SourceTitle: l.SourceTitle,
	}
}
