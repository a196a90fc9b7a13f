// AngelaMos | 2026
// entity.go

package lead

import (
	"time"
)

// Lead is a contact captured by unlocking a link. Leads are immutable and
// never deleted; the link_id may dangle after the link itself is removed.
type Lead struct {
	ID         string    `db:"id"`
	LinkID     string    `db:"link_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	CapturedAt time.Time `db:"captured_at"`
}

// WithSource is a lead joined against the current links collection for
// display and export. SourceTitle falls back to UnknownLinkTitle when the
// referenced link no longer exists.
type WithSource struct {
	Lead
	SourceTitle string `db:"source_title"`
}

const UnknownLinkTitle = "Unknown Link"
