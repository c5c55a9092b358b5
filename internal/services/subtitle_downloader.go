package services

import (
	"context"

	"github.com/cinesub/subrip/internal/models"
)

// SubtitleDownloader defines the interface for downloading subtitle tracks
type SubtitleDownloader interface {
	// FetchSegments downloads all segments of a track concurrently and
	// returns them in original playlist order. The batch is all-or-nothing:
	// any segment failure fails the whole call.
	FetchSegments(ctx context.Context, track models.TrackRef) ([]models.Segment, error)

	// DownloadSubtitles fetches, merges, and serializes one subtitle track.
	DownloadSubtitles(ctx context.Context, movie *models.MovieRecord, track models.TrackRef, format models.SubtitleFormat) (*models.DownloadResult, error)

	// Close releases the downloader's HTTP resources.
	Close() error
}
