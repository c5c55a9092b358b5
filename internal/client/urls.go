package client

import (
	"regexp"
	"strings"

	"github.com/cinesub/subrip/internal/apperrors"
	"github.com/cinesub/subrip/internal/models"
)

var (
	// https://itunes.apple.com/us/movie/example-movie/id1234567890
	itunesURLPattern = regexp.MustCompile(`^https?://itunes\.apple\.com/([a-z]{2})/movie/(?:[^/]+/)?(id\d+)`)

	// https://tv.apple.com/us/movie/example-movie/umc.cmc.abc123
	appleTVURLPattern = regexp.MustCompile(`^https?://tv\.apple\.com/([a-z]{2})/movie/(?:[^/]+/)?(umc\.cmc\.[a-z0-9]+)`)
)

// movieURL is a classified movie page URL.
type movieURL struct {
	Source models.SourceKind
	// Storefront is the two-letter country code from the URL path.
	Storefront string
	// MovieID is the source-native identifier: "id..." for iTunes,
	// "umc.cmc...." for AppleTV.
	MovieID string
	// Canonical is the URL with any trailing path or query stripped.
	Canonical string
}

// classifyURL determines which source a movie URL belongs to. URLs that match
// neither source return ErrInvalidURL.
func classifyURL(rawURL string) (movieURL, error) {
	trimmed := strings.TrimSpace(rawURL)

	if m := itunesURLPattern.FindStringSubmatch(trimmed); m != nil {
		return movieURL{
			Source:     models.SourceITunes,
			Storefront: m[1],
			MovieID:    m[2],
			Canonical:  m[0],
		}, nil
	}
	if m := appleTVURLPattern.FindStringSubmatch(trimmed); m != nil {
		return movieURL{
			Source:     models.SourceAppleTV,
			Storefront: m[1],
			MovieID:    m[2],
			Canonical:  m[0],
		}, nil
	}
	return movieURL{}, apperrors.NewInvalidURLError(rawURL)
}
