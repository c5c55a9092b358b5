package models

import "time"

// Segment is one fetched chunk of a subtitle track. Index is the 0-based
// position of the segment in the track's sub-playlist; Text is the decoded
// body exactly as received.
type Segment struct {
	Index int
	Text  string
}

// Cue is a single timed subtitle entry.
type Cue struct {
	ID       string
	Start    time.Duration
	End      time.Duration
	Settings string
	Lines    []string
}

// CueDocument is the merged, ordered cue sequence for one track.
// Cues keep source-segment order; they are never re-sorted by timecode.
type CueDocument struct {
	LanguageCode string
	Cues         []Cue
}

// SubtitleFormat is an output serialization format.
type SubtitleFormat int

const (
	FormatVTT SubtitleFormat = iota
	FormatSRT
)

// Extension returns the file extension (without dot) for the format.
func (f SubtitleFormat) Extension() string {
	switch f {
	case FormatVTT:
		return "vtt"
	case FormatSRT:
		return "srt"
	default:
		return ""
	}
}

// ContentType returns the MIME type for the format.
func (f SubtitleFormat) ContentType() string {
	switch f {
	case FormatVTT:
		return "text/vtt"
	case FormatSRT:
		return "application/x-subrip"
	default:
		return "application/octet-stream"
	}
}

// ParseSubtitleFormat maps a format name to a SubtitleFormat.
// Returns FormatVTT and false for unknown names.
func ParseSubtitleFormat(name string) (SubtitleFormat, bool) {
	switch name {
	case "vtt", "webvtt":
		return FormatVTT, true
	case "srt", "subrip":
		return FormatSRT, true
	default:
		return FormatVTT, false
	}
}
