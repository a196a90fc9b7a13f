// AngelaMos | 2026
// entity.go

package creator

import (
	"time"
)

// Creator is the single content owner. The deployment is single-tenant:
// exactly one row exists after first-run seeding, and it is never deleted.
type Creator struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Handle    string    `db:"handle"`
	Email     string    `db:"email"`
	AvatarURL string    `db:"avatar_url"`
	Plan      string    `db:"plan"`
	JoinedAt  time.Time `db:"joined_at"`
}

const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)
