package client

import (
	"context"
	"net/url"

	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/models"
	"github.com/cinesub/subrip/internal/playlist"
)

// GetTracks lists the subtitle tracks of a main playlist. The language filter
// matches case-insensitively against language codes and display names; an
// empty filter keeps every track. Track playlist URLs are resolved against
// the main playlist URL.
func (c *client) GetTracks(ctx context.Context, playlistURL string, languageFilter []string) ([]models.TrackRef, error) {
	master, err := c.fetcher.FetchMaster(ctx, playlistURL)
	if err != nil {
		return nil, err
	}

	tracks := playlist.SelectTracks(master, languageFilter)
	resolveTrackURLs(tracks, playlistURL)

	logger := config.GetLogger()
	logger.Info().
		Str("playlist", playlistURL).
		Int("tracks", len(tracks)).
		Msg("Selected subtitle tracks")
	return tracks, nil
}

// StreamTracks streams the subtitle tracks of a main playlist. The channel is
// closed once all tracks have been sent; a failure to fetch or decode the
// playlist arrives as a single StreamResult carrying the error.
func (c *client) StreamTracks(ctx context.Context, playlistURL string, languageFilter []string) <-chan models.StreamResult[models.TrackRef] {
	ch := make(chan models.StreamResult[models.TrackRef])

	go func() {
		defer close(ch)

		tracks, err := c.GetTracks(ctx, playlistURL, languageFilter)
		if err != nil {
			select {
			case ch <- models.StreamResult[models.TrackRef]{Err: err}:
			case <-ctx.Done():
			}
			return
		}

		for _, track := range tracks {
			select {
			case ch <- models.StreamResult[models.TrackRef]{Value: track}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

// resolveTrackURLs rewrites relative track playlist URIs into absolute URLs
// against the main playlist location. Unparseable URIs are left as-is for the
// fetch to reject later.
func resolveTrackURLs(tracks []models.TrackRef, playlistURL string) {
	base, err := url.Parse(playlistURL)
	if err != nil {
		return
	}
	for i := range tracks {
		ref, err := url.Parse(tracks[i].PlaylistURL)
		if err != nil {
			continue
		}
		tracks[i].PlaylistURL = base.ResolveReference(ref).String()
	}
}
