// AngelaMos | 2026
// content.go

package link

import (
	"strings"
)

// UploadPlaceholderURL stands in for the destination of file and course
// links until real upload storage exists. The literal matches what legacy
// clients already have persisted.
const UploadPlaceholderURL = "#mock-file-download"

const (
	defaultVideoThumbnail = "https://picsum.photos/seed/yt/800/600"
	defaultFileThumbnail  = "https://picsum.photos/seed/doc/800/600"
)

// NormalizeDestination rewrites the submitted destination according to
// content kind. Video links in the conventional watch form become embed
// URLs; file and course destinations are replaced by the upload
// placeholder outright.
func NormalizeDestination(kind, url string) string {
	if kind == KindVideoEmbed {
		if strings.Contains(url, "/embed/") {
			return url
		}
		return strings.Replace(url, "watch?v=", "embed/", 1)
	}

	return UploadPlaceholderURL
}

// DefaultThumbnail returns the kind-specific fallback used when the
// creator supplies no custom thumbnail.
func DefaultThumbnail(kind string) string {
	if kind == KindVideoEmbed {
		return defaultVideoThumbnail
	}
	return defaultFileThumbnail
}
