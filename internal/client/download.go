package client

import (
	"context"

	"github.com/cinesub/subrip/internal/models"
)

// DownloadSubtitles fetches every segment of the track's sub-playlist,
// merges them into one document, and serializes it in the requested format.
func (c *client) DownloadSubtitles(ctx context.Context, movie *models.MovieRecord, track models.TrackRef, format models.SubtitleFormat) (*models.DownloadResult, error) {
	return c.downloader.DownloadSubtitles(ctx, movie, track, format)
}
