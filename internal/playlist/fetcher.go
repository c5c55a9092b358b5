package playlist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/grafov/m3u8"

	"github.com/cinesub/subrip/internal/cache"
	"github.com/cinesub/subrip/internal/config"
)

// Fetcher retrieves and decodes M3U8 manifests. Fetched manifest bodies are
// kept in a TTL-bounded cache so that validating a playlist and later
// selecting its tracks costs one network round trip, not two.
type Fetcher struct {
	httpClient    *http.Client
	manifestCache cache.Cache
	userAgent     string
}

// NewFetcher creates a manifest fetcher sharing the given HTTP client.
// manifestCache may be nil to disable caching.
func NewFetcher(httpClient *http.Client, manifestCache cache.Cache, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient:    httpClient,
		manifestCache: manifestCache,
		userAgent:     userAgent,
	}
}

// Fetch returns the raw manifest body at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, manifestURL string) ([]byte, error) {
	if f.manifestCache != nil {
		if body, ok := f.manifestCache.Get(manifestURL); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest body: %w", err)
	}

	if f.manifestCache != nil {
		f.manifestCache.Set(manifestURL, body)
	}
	return body, nil
}

// FetchMaster fetches and decodes a main playlist.
func (f *Fetcher) FetchMaster(ctx context.Context, manifestURL string) (*m3u8.MasterPlaylist, error) {
	body, err := f.Fetch(ctx, manifestURL)
	if err != nil {
		return nil, err
	}

	pl, listType, err := m3u8.DecodeFrom(bytes.NewReader(body), true)
	if err != nil {
		return nil, fmt.Errorf("failed to decode playlist at %s: %w", manifestURL, err)
	}
	master, ok := pl.(*m3u8.MasterPlaylist)
	if !ok || listType != m3u8.MASTER {
		return nil, fmt.Errorf("playlist at %s is not a master playlist", manifestURL)
	}
	return master, nil
}

// FetchMedia fetches and decodes a sub-playlist (segment list).
func (f *Fetcher) FetchMedia(ctx context.Context, manifestURL string) (*m3u8.MediaPlaylist, error) {
	body, err := f.Fetch(ctx, manifestURL)
	if err != nil {
		return nil, err
	}

	pl, listType, err := m3u8.DecodeFrom(bytes.NewReader(body), true)
	if err != nil {
		return nil, fmt.Errorf("failed to decode playlist at %s: %w", manifestURL, err)
	}
	media, ok := pl.(*m3u8.MediaPlaylist)
	if !ok || listType != m3u8.MEDIA {
		return nil, fmt.Errorf("playlist at %s is not a media playlist", manifestURL)
	}
	return media, nil
}

// Validate reports whether the URL points at a structurally valid playlist
// manifest. Any transport error, non-success status, or decode failure yields
// false. A single attempt is made; retries are the caller's concern.
func (f *Fetcher) Validate(ctx context.Context, manifestURL string) bool {
	logger := config.GetLogger()

	body, err := f.Fetch(ctx, manifestURL)
	if err != nil {
		logger.Debug().Err(err).Str("url", manifestURL).Msg("Playlist candidate failed to fetch")
		return false
	}

	if _, _, err := m3u8.DecodeFrom(bytes.NewReader(body), true); err != nil {
		logger.Debug().Err(err).Str("url", manifestURL).Msg("Playlist candidate failed to decode")
		return false
	}
	return true
}

// SegmentURIs returns the ordered list of segment URLs of a media playlist,
// resolved against the playlist's own URL.
func SegmentURIs(media *m3u8.MediaPlaylist, playlistURL string) ([]string, error) {
	base, err := url.Parse(playlistURL)
	if err != nil {
		return nil, fmt.Errorf("invalid playlist URL %q: %w", playlistURL, err)
	}

	uris := make([]string, 0, len(media.Segments))
	for _, seg := range media.Segments {
		// The decoder sizes Segments to capacity; trailing entries are nil.
		if seg == nil {
			continue
		}
		ref, err := url.Parse(seg.URI)
		if err != nil {
			return nil, fmt.Errorf("invalid segment URI %q: %w", seg.URI, err)
		}
		uris = append(uris, base.ResolveReference(ref).String())
	}
	return uris, nil
}
