package models

// TrackKind classifies a subtitle track.
type TrackKind int

const (
	TrackKindNormal TrackKind = iota
	TrackKindForced
	TrackKindClosedCaption
)

// String returns the canonical lower-case name used in log output.
func (k TrackKind) String() string {
	switch k {
	case TrackKindForced:
		return "forced"
	case TrackKindClosedCaption:
		return "cc"
	default:
		return "normal"
	}
}

// FileSuffix returns the file-name suffix for the kind, or "" for Normal.
func (k TrackKind) FileSuffix() string {
	if k == TrackKindNormal {
		return ""
	}
	return k.String()
}

// TrackRef is a subtitle track selected from a main playlist.
type TrackRef struct {
	LanguageCode string    `json:"languageCode"`
	LanguageName string    `json:"languageName"`
	Kind         TrackKind `json:"kind"`
	PlaylistURL  string    `json:"playlistUrl"`
}
