// AngelaMos | 2026
// dto.go

package link

import (
	"time"
)

type CreateLinkRequest struct {
	Title        string `json:"title"         validate:"required,min=1,max=200"`
	Description  string `json:"description"   validate:"max=2000"`
	Kind         string `json:"kind"          validate:"required,oneof=video_embed file course_bundle"`
	URL          string `json:"url"           validate:"omitempty,max=2048"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

type LinkResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Kind         string    `json:"kind"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsActive     bool      `json:"is_active"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	ShareURL     string    `json:"share_url"`
}

type LinkListResponse struct {
	Links []LinkResponse `json:"links"`
}

func ToLinkResponse(l *Link, shareURL string) LinkResponse {
	return LinkResponse{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Kind:         l.Kind,
		URL:          l.URL,
		ThumbnailURL: l.ThumbnailURL,
		IsActive:     l.IsActive,
		Views:        l.Views,
		CreatedAt:    l.CreatedAt,
		ShareURL:     shareURL,
	}
}
