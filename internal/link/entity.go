// AngelaMos | 2026
// entity.go

package link

import (
	"time"
)

// Link is a single gated piece of content. The id is immutable after
// creation and the view counter only ever increases.
type Link struct {
	ID           string    `db:"id"`
	CreatorID    string    `db:"creator_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Kind         string    `db:"kind"`
	URL          string    `db:"url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	IsActive     bool      `db:"is_active"`
	Views        int64     `db:"views"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	KindVideoEmbed   = "video_embed"
	KindFile         = "file"
	KindCourseBundle = "course_bundle"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindVideoEmbed, KindFile, KindCourseBundle:
		return true
	}
	return false
}
