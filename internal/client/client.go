package client

import (
	"context"
	"net/http"
	"time"

	"github.com/cinesub/subrip/internal/cache"
	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/models"
	"github.com/cinesub/subrip/internal/parser"
	"github.com/cinesub/subrip/internal/playlist"
	"github.com/cinesub/subrip/internal/services"
	"github.com/cinesub/subrip/internal/storefront"
)

// Client defines the interface for ripping subtitles off iTunes/AppleTV
// movie pages.
type Client interface {
	// GetMovie resolves a movie URL into a normalized MovieRecord with its
	// validated playlist assets.
	GetMovie(ctx context.Context, rawURL string) (*models.MovieRecord, error)

	// GetTracks lists the subtitle tracks of a main playlist, optionally
	// filtered by language codes or display names.
	GetTracks(ctx context.Context, playlistURL string, languageFilter []string) ([]models.TrackRef, error)

	// StreamTracks emits subtitle tracks as they are discovered. The channel
	// is closed when all tracks have been sent; errors arrive as a
	// StreamResult with a non-nil Err field.
	StreamTracks(ctx context.Context, playlistURL string, languageFilter []string) <-chan models.StreamResult[models.TrackRef]

	// DownloadSubtitles fetches, merges, and serializes one subtitle track.
	DownloadSubtitles(ctx context.Context, movie *models.MovieRecord, track models.TrackRef, format models.SubtitleFormat) (*models.DownloadResult, error)

	// Close releases any resources held by the client (HTTP connections,
	// cache backends).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	userAgent     string
	apiBaseURL    string
	storefronts   *storefront.Table
	manifestCache cache.Cache
	fetcher       *playlist.Fetcher
	extractor     *parser.Extractor
	downloader    services.SubtitleDownloader
}

// NewClient creates a new client instance. The storefront table must already
// be loaded; it may be nil when only iTunes URLs will be resolved.
func NewClient(cfg *config.Config, storefronts *storefront.Table) Client {
	logger := config.GetLogger()

	// Parse timeout duration
	timeout := 30 * time.Second // default
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its settings (timeouts, connection
	// pooling, HTTP/2) and wrap it with compression support.
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}

	manifestCache := newManifestCache(cfg)
	fetcher := playlist.NewFetcher(httpClient, manifestCache, cfg.UserAgent)

	return &client{
		httpClient:    httpClient,
		userAgent:     cfg.UserAgent,
		apiBaseURL:    cfg.AppleTVAPIBaseURL,
		storefronts:   storefronts,
		manifestCache: manifestCache,
		fetcher:       fetcher,
		extractor:     parser.NewExtractor(fetcher),
		downloader:    services.NewSubtitleDownloader(httpClient, fetcher, cfg.UserAgent),
	}
}

// newManifestCache builds the manifest cache from config. A broken cache
// configuration degrades to no caching instead of failing the client.
func newManifestCache(cfg *config.Config) cache.Cache {
	logger := config.GetLogger()

	ttl := 15 * time.Minute
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 15m")
		} else {
			ttl = parsed
		}
	}

	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}
	size := cfg.Cache.Size
	if size <= 0 {
		size = 128
	}

	manifestCache, err := cache.New(provider, cache.ProviderConfig{
		Size:          size,
		TTL:           ttl,
		RedisAddress:  cfg.Redis.Address,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Group:         "manifests",
	})
	if err != nil {
		logger.Warn().Err(err).Str("provider", provider).Msg("Failed to create manifest cache, continuing without caching")
		return nil
	}
	return manifestCache
}

// Close releases the client's resources: the downloader's HTTP connections
// and the manifest cache backend.
func (c *client) Close() error {
	err := c.downloader.Close()
	if c.manifestCache != nil {
		if cacheErr := c.manifestCache.Close(); err == nil {
			err = cacheErr
		}
	}
	return err
}
