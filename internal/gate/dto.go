// AngelaMos | 2026
// dto.go

package gate

// Gate view statuses. Unavailable is terminal: unknown and deactivated
// links are indistinguishable from the outside.
const (
	StatusLocked      = "locked"
	StatusUnlocked    = "unlocked"
	StatusUnavailable = "unavailable"
)

const unavailableMessage = "This link is either invalid, expired, or has been removed by the creator."

type UnlockRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"required,min=3,max=50"`
}

// View is the gate's externally visible state. Content holds the
// destination only in the unlocked state; the locked and unavailable
// shapes must never carry it.
type View struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Content *ContentView `json:"content,omitempty"`
	Creator *CreatorView `json:"creator,omitempty"`
}

type ContentView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Kind         string `json:"kind"`
	ThumbnailURL string `json:"thumbnail_url"`
	URL          string `json:"url,omitempty"`
}

type CreatorView struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
