package services

import (
	"strconv"
	"strings"

	"github.com/cinesub/subrip/internal/models"
)

// BuildFileName computes the user-visible subtitle file name:
//
//	<slugified-title>[.<year>].iT.WEB.<lang-code>[.<kind>].<ext>
//
// The year is omitted when it already appears in the title; the kind suffix
// is omitted for Normal tracks.
func BuildFileName(title string, year int, languageCode string, kind models.TrackKind, format models.SubtitleFormat) string {
	var b strings.Builder
	b.WriteString(slugify(title))

	if year > 0 && !strings.Contains(title, strconv.Itoa(year)) {
		b.WriteString(".")
		b.WriteString(strconv.Itoa(year))
	}

	b.WriteString(".iT.WEB.")
	b.WriteString(languageCode)

	if suffix := kind.FileSuffix(); suffix != "" {
		b.WriteString(".")
		b.WriteString(suffix)
	}

	b.WriteString(".")
	b.WriteString(format.Extension())
	return b.String()
}

// slugify lower-cases a title and collapses every run of non-alphanumeric
// characters into a single dot.
func slugify(title string) string {
	var b strings.Builder
	dotPending := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dotPending && b.Len() > 0 {
				b.WriteString(".")
			}
			dotPending = false
			b.WriteRune(r)
		} else {
			dotPending = true
		}
	}
	return b.String()
}
