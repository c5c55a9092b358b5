package models

// SourceKind identifies which platform surface a response came from.
type SourceKind string

const (
	SourceITunes  SourceKind = "itunes"
	SourceAppleTV SourceKind = "appletv"
)

// AssetRef points at one purchasable/rentable variant of a movie.
// The playlist URL has already been validated before an AssetRef is built.
type AssetRef struct {
	ID          string `json:"id"`
	PlaylistURL string `json:"playlistUrl"`
}

// MovieRecord is the normalized result of a metadata extraction.
// Assets may be empty: a movie page with no playable playlist is a
// legitimate outcome, not an error.
type MovieRecord struct {
	Source      SourceKind `json:"source"`
	Title       string     `json:"title"`
	ReleaseYear int        `json:"releaseYear"`
	Assets      []AssetRef `json:"assets"`
}
