package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/cinesub/subrip/internal/models"
)

// Merge parses each segment's text as a WebVTT fragment and concatenates the
// cues in segment order. Cues are never re-sorted by timecode, de-duplicated,
// or re-timed: seam consistency is the platform's segmenting contract, not
// something the merger enforces beyond order preservation.
func Merge(segments []models.Segment, languageCode string) models.CueDocument {
	doc := models.CueDocument{LanguageCode: languageCode}
	for _, segment := range segments {
		doc.Cues = append(doc.Cues, parseFragment(segment.Text)...)
	}
	return doc
}

// parseFragment extracts the cues of one WebVTT segment. Headers repeated at
// segment seams (WEBVTT, X-TIMESTAMP-MAP) and non-cue blocks (NOTE, STYLE,
// REGION) are boundary artifacts and are skipped. Blocks whose timing line
// cannot be parsed are skipped as well.
func parseFragment(text string) []models.Cue {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var cues []models.Cue
	for _, block := range strings.Split(text, "\n\n") {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}
		first := lines[0]
		if strings.HasPrefix(first, "WEBVTT") ||
			strings.HasPrefix(first, "X-TIMESTAMP-MAP") ||
			strings.HasPrefix(first, "NOTE") ||
			strings.HasPrefix(first, "STYLE") ||
			strings.HasPrefix(first, "REGION") {
			// Headers may share a block with the first cue when the segment
			// omits the separating blank line.
			for len(lines) > 0 && !strings.Contains(lines[0], "-->") {
				lines = lines[1:]
			}
			if len(lines) == 0 {
				continue
			}
		}

		if cue, ok := parseCueBlock(lines); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

// parseCueBlock parses one cue: an optional identifier line, a timing line,
// and the payload lines.
func parseCueBlock(lines []string) (models.Cue, bool) {
	var cue models.Cue

	if !strings.Contains(lines[0], "-->") {
		if len(lines) < 2 || !strings.Contains(lines[1], "-->") {
			return cue, false
		}
		cue.ID = lines[0]
		lines = lines[1:]
	}

	start, end, settings, err := parseTimingLine(lines[0])
	if err != nil {
		return cue, false
	}
	cue.Start = start
	cue.End = end
	cue.Settings = settings
	cue.Lines = lines[1:]
	return cue, true
}

// parseTimingLine parses "00:00:01.000 --> 00:00:02.500 line:85%".
func parseTimingLine(line string) (start, end time.Duration, settings string, err error) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, "", fmt.Errorf("no arrow in timing line %q", line)
	}

	start, err = parseVTTTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, "", err
	}

	rest := strings.Fields(strings.TrimSpace(parts[1]))
	if len(rest) == 0 {
		return 0, 0, "", fmt.Errorf("timing line %q has no end timestamp", line)
	}
	end, err = parseVTTTimestamp(rest[0])
	if err != nil {
		return 0, 0, "", err
	}
	settings = strings.Join(rest[1:], " ")
	return start, end, settings, nil
}

// parseVTTTimestamp parses "HH:MM:SS.mmm" or "MM:SS.mmm".
func parseVTTTimestamp(ts string) (time.Duration, error) {
	var h, m, s, ms int
	switch strings.Count(ts, ":") {
	case 2:
		if _, err := fmt.Sscanf(ts, "%d:%d:%d.%d", &h, &m, &s, &ms); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
		}
	case 1:
		if _, err := fmt.Sscanf(ts, "%d:%d.%d", &m, &s, &ms); err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
		}
	default:
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// nonEmptyLines splits a block into trimmed-right lines, dropping leading and
// trailing blanks.
func nonEmptyLines(block string) []string {
	raw := strings.Split(block, "\n")
	var lines []string
	for _, l := range raw {
		l = strings.TrimRight(l, " \t")
		if l == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, l)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
