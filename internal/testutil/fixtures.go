// Package testutil holds shared fixtures and helpers for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/cinesub/subrip/internal/models"
)

// SubtitleRendition describes one EXT-X-MEDIA subtitle entry for a generated
// master manifest.
type SubtitleRendition struct {
	GroupID         string
	Name            string
	Language        string
	Forced          bool
	Characteristics string
	URI             string
}

// MasterManifest builds a master playlist declaring the given subtitle
// renditions plus a single video variant referencing the first group.
func MasterManifest(renditions ...SubtitleRendition) string {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")

	group := "subtitles_ak"
	if len(renditions) > 0 {
		group = groupOrDefault(renditions[0].GroupID)
	}
	for _, r := range renditions {
		forced := "NO"
		if r.Forced {
			forced = "YES"
		}
		b.WriteString(fmt.Sprintf(
			`#EXT-X-MEDIA:TYPE=SUBTITLES,GROUP-ID=%q,NAME=%q,LANGUAGE=%q,AUTOSELECT=YES,FORCED=%s`,
			groupOrDefault(r.GroupID), r.Name, r.Language, forced))
		if r.Characteristics != "" {
			b.WriteString(fmt.Sprintf(`,CHARACTERISTICS=%q`, r.Characteristics))
		}
		b.WriteString(fmt.Sprintf(`,URI=%q`, r.URI))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("#EXT-X-STREAM-INF:BANDWIDTH=2000000,CODECS=\"avc1.640028\",SUBTITLES=%q\n", group))
	b.WriteString("video/prog_index.m3u8\n")
	return b.String()
}

func groupOrDefault(group string) string {
	if group == "" {
		return "subtitles_ak"
	}
	return group
}

// MediaManifest builds a media playlist listing the given segment URIs in
// order.
func MediaManifest(segmentURIs ...string) string {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	b.WriteString("#EXT-X-TARGETDURATION:6\n")
	b.WriteString("#EXT-X-VERSION:3\n")
	b.WriteString("#EXT-X-MEDIA-SEQUENCE:0\n")
	for _, uri := range segmentURIs {
		b.WriteString("#EXTINF:6.000,\n")
		b.WriteString(uri)
		b.WriteString("\n")
	}
	b.WriteString("#EXT-X-ENDLIST\n")
	return b.String()
}

// VTTSegment builds a WebVTT segment with one cue per text argument, starting
// at the given second offset with one-second cues.
func VTTSegment(startSecond int, lines ...string) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n")
	b.WriteString("X-TIMESTAMP-MAP=MPEGTS:900000,LOCAL:00:00:00.000\n\n")
	for i, line := range lines {
		start := startSecond + i
		b.WriteString(fmt.Sprintf("00:%02d:%02d.000 --> 00:%02d:%02d.500\n", start/60, start%60, start/60, start%60))
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	return b.String()
}

// CollectTracks consumes a track stream and returns the collected tracks.
// This is a test helper and should not be used in production code.
func CollectTracks(ctx context.Context, stream <-chan models.StreamResult[models.TrackRef]) ([]models.TrackRef, error) {
	var tracks []models.TrackRef
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				return tracks, nil
			}
			if result.Err != nil {
				return nil, result.Err
			}
			tracks = append(tracks, result.Value)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
