// AngelaMos | 2026
// dto.go

package creator

import (
	"time"
)

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"       validate:"omitempty,min=1,max=100"`
	Handle    *string `json:"handle,omitempty"     validate:"omitempty,min=2,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	Plan      string    `json:"plan"`
	JoinedAt  time.Time `json:"joined_at"`
}

func ToProfileResponse(c *Creator) ProfileResponse {
	return ProfileResponse{
		ID:        c.ID,
		Name:      c.Name,
		Handle:    c.Handle,
		Email:     c.Email,
		AvatarURL: c.AvatarURL,
		Plan:      c.Plan,
		JoinedAt:  c.JoinedAt,
	}
}
