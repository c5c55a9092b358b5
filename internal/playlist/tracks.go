package playlist

import (
	"strings"

	"github.com/grafov/m3u8"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/cinesub/subrip/internal/models"
)

// subtitleGroupIDs is the allow-list of media group identifiers that carry
// real subtitle tracks. Other groups can be flagged TYPE=SUBTITLES on some
// pages but point at unrelated or duplicate renditions.
var subtitleGroupIDs = map[string]bool{
	"subtitles_ak":                     true,
	"subtitles_vod-ak-amt.tv.apple.com": true,
}

// SelectTracks returns the subtitle tracks of a main playlist in source
// order. languageFilter entries are matched case-insensitively against both
// the language code and the display name; a nil or empty filter keeps every
// track. The function is pure: calling it again restarts the sequence.
func SelectTracks(master *m3u8.MasterPlaylist, languageFilter []string) []models.TrackRef {
	filter := make(map[string]bool, len(languageFilter))
	for _, f := range languageFilter {
		filter[strings.ToLower(f)] = true
	}

	var tracks []models.TrackRef
	seen := make(map[string]bool)

	for _, variant := range master.Variants {
		if variant == nil {
			continue
		}
		for _, alt := range variant.Alternatives {
			if alt == nil || alt.Type != "SUBTITLES" || !subtitleGroupIDs[alt.GroupId] {
				continue
			}
			// Alternatives repeat across variants; keep the first sighting.
			if seen[alt.URI] {
				continue
			}
			seen[alt.URI] = true

			name := alt.Name
			if name == "" {
				name = languageDisplayName(alt.Language)
			}

			if len(filter) > 0 &&
				!filter[strings.ToLower(alt.Language)] &&
				!filter[strings.ToLower(name)] {
				continue
			}

			tracks = append(tracks, models.TrackRef{
				LanguageCode: alt.Language,
				LanguageName: name,
				Kind:         classifyTrack(alt),
				PlaylistURL:  alt.URI,
			})
		}
	}
	return tracks
}

// classifyTrack maps rendition attributes to a TrackKind. Forced takes
// precedence over the accessibility characteristic.
func classifyTrack(alt *m3u8.Alternative) models.TrackKind {
	if alt.Forced == "YES" {
		return models.TrackKindForced
	}
	if strings.Contains(alt.Characteristics, "public.accessibility") {
		return models.TrackKindClosedCaption
	}
	return models.TrackKindNormal
}

// languageDisplayName derives an English display name from a language code,
// falling back to the code itself when it cannot be parsed.
func languageDisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
