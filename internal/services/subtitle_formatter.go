package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/cinesub/subrip/internal/models"
)

// FormatCues serializes a merged cue document into the requested subtitle
// format. The serialization is a pure function of the cue list. An
// unsupported format is a programming error and panics.
func FormatCues(doc models.CueDocument, format models.SubtitleFormat) []byte {
	switch format {
	case models.FormatVTT:
		return formatVTT(doc)
	case models.FormatSRT:
		return formatSRT(doc)
	default:
		panic(fmt.Sprintf("unsupported subtitle format %d", format))
	}
}

func formatVTT(doc models.CueDocument) []byte {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")

	for _, cue := range doc.Cues {
		if cue.ID != "" {
			b.WriteString(cue.ID)
			b.WriteString("\n")
		}
		b.WriteString(vttTimestamp(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(vttTimestamp(cue.End))
		if cue.Settings != "" {
			b.WriteString(" ")
			b.WriteString(cue.Settings)
		}
		b.WriteString("\n")
		for _, line := range cue.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func formatSRT(doc models.CueDocument) []byte {
	var b strings.Builder
	for i, cue := range doc.Cues {
		fmt.Fprintf(&b, "%d\n", i+1)
		b.WriteString(srtTimestamp(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(srtTimestamp(cue.End))
		b.WriteString("\n")
		for _, line := range cue.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func vttTimestamp(d time.Duration) string {
	h, m, s, ms := splitDuration(d)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func srtTimestamp(d time.Duration) string {
	h, m, s, ms := splitDuration(d)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func splitDuration(d time.Duration) (h, m, s, ms int) {
	h = int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m = int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s = int(d / time.Second)
	d -= time.Duration(s) * time.Second
	ms = int(d / time.Millisecond)
	return h, m, s, ms
}
