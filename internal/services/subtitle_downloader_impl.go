package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/cinesub/subrip/internal/apperrors"
	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/metrics"
	"github.com/cinesub/subrip/internal/models"
	"github.com/cinesub/subrip/internal/playlist"
)

// maxConcurrentSegmentFetches bounds the fan-out of one segment batch.
const maxConcurrentSegmentFetches = 8

// DefaultSubtitleDownloader implements SubtitleDownloader. It owns the shared
// HTTP client for the lifetime of the downloader; Close releases it.
type DefaultSubtitleDownloader struct {
	httpClient *http.Client
	fetcher    *playlist.Fetcher
	userAgent  string
}

// NewSubtitleDownloader creates a downloader sharing the given HTTP client
// and manifest fetcher.
func NewSubtitleDownloader(httpClient *http.Client, fetcher *playlist.Fetcher, userAgent string) SubtitleDownloader {
	return &DefaultSubtitleDownloader{
		httpClient: httpClient,
		fetcher:    fetcher,
		userAgent:  userAgent,
	}
}

// FetchSegments downloads every segment of the track's sub-playlist. Fetches
// run concurrently; each result is written once into its index slot, so the
// returned slice is in original order no matter how completions interleave.
// The first failure cancels the remaining fetches and fails the batch.
func (d *DefaultSubtitleDownloader) FetchSegments(ctx context.Context, track models.TrackRef) ([]models.Segment, error) {
	logger := config.GetLogger()

	media, err := d.fetcher.FetchMedia(ctx, track.PlaylistURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track sub-playlist: %w", err)
	}
	uris, err := playlist.SegmentURIs(media, track.PlaylistURL)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("language", track.LanguageCode).
		Str("kind", track.Kind.String()).
		Int("segments", len(uris)).
		Msg("Downloading subtitle segments")

	segments := make([]models.Segment, len(uris))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSegmentFetches)
	for i, uri := range uris {
		i, uri := i, uri
		g.Go(func() error {
			text, err := d.fetchSegment(gctx, uri)
			if err != nil {
				metrics.SegmentDownloadsTotal.WithLabelValues("error").Inc()
				return apperrors.NewSegmentFetchError(uri, i, err)
			}
			metrics.SegmentDownloadsTotal.WithLabelValues("success").Inc()
			segments[i] = models.Segment{Index: i, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}

// fetchSegment downloads one segment body and decodes it as UTF-8 text.
func (d *DefaultSubtitleDownloader) fetchSegment(ctx context.Context, segmentURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, segmentURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create segment request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("segment request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read segment body: %w", err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("segment body is not valid UTF-8")
	}
	return string(body), nil
}

// DownloadSubtitles runs the full fetch → merge → format pipeline for one
// track. No partial document is ever produced: a failed batch aborts before
// merging.
func (d *DefaultSubtitleDownloader) DownloadSubtitles(ctx context.Context, movie *models.MovieRecord, track models.TrackRef, format models.SubtitleFormat) (*models.DownloadResult, error) {
	logger := config.GetLogger()

	segments, err := d.FetchSegments(ctx, track)
	if err != nil {
		metrics.SubtitleDownloadsTotal.WithLabelValues(format.Extension(), "error").Inc()
		return nil, err
	}

	doc := Merge(segments, track.LanguageCode)
	content := FormatCues(doc, format)
	filename := BuildFileName(movie.Title, movie.ReleaseYear, track.LanguageCode, track.Kind, format)

	logger.Info().
		Str("filename", filename).
		Int("cues", len(doc.Cues)).
		Int("size", len(content)).
		Msg("Built subtitle document")
	metrics.SubtitleDownloadsTotal.WithLabelValues(format.Extension(), "success").Inc()

	return &models.DownloadResult{
		Filename:    filename,
		Content:     content,
		ContentType: format.ContentType(),
	}, nil
}

// Close releases the downloader's HTTP resources. Safe to call on every exit
// path, including after errors.
func (d *DefaultSubtitleDownloader) Close() error {
	d.httpClient.CloseIdleConnections()
	return nil
}
