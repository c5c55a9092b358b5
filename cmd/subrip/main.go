package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cinesub/subrip/internal/client"
	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/models"
	"github.com/cinesub/subrip/internal/storefront"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	urls := os.Args[1:]
	if len(urls) == 0 {
		logger.Fatal().Msg("Usage: subrip <movie-url> [movie-url...]")
	}

	format, ok := models.ParseSubtitleFormat(cfg.Output.Format)
	if !ok {
		logger.Warn().Str("format", cfg.Output.Format).Msg("Unknown output format, using vtt")
	}

	storefronts := storefront.Default()
	if cfg.StorefrontsPath != "" {
		loaded, err := storefront.LoadFile(cfg.StorefrontsPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.StorefrontsPath).Msg("Failed to load storefront table")
		}
		storefronts = loaded
	}

	logger.Info().
		Str("output_dir", cfg.Output.Dir).
		Str("format", format.Extension()).
		Strs("languages", cfg.Languages).
		Int("storefronts", storefronts.Len()).
		Msg("Application started with configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(cfg, storefronts)
	defer c.Close()

	failures := 0
	for _, rawURL := range urls {
		if err := ripMovie(ctx, c, rawURL, format); err != nil {
			logger.Error().Err(err).Str("url", rawURL).Msg("Failed to rip movie")
			failures++
		}
		if ctx.Err() != nil {
			logger.Warn().Msg("Interrupted, stopping")
			break
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// ripMovie resolves one movie URL and downloads every matching subtitle
// track of its first playable asset.
func ripMovie(ctx context.Context, c client.Client, rawURL string, format models.SubtitleFormat) error {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	movie, err := c.GetMovie(ctx, rawURL)
	if err != nil {
		return err
	}
	if len(movie.Assets) == 0 {
		logger.Warn().Str("title", movie.Title).Msg("Movie has no playable asset, nothing to download")
		return nil
	}

	downloaded := 0
	for result := range c.StreamTracks(ctx, movie.Assets[0].PlaylistURL, cfg.Languages) {
		if result.Err != nil {
			return result.Err
		}
		track := result.Value

		subtitle, err := c.DownloadSubtitles(ctx, movie, track, format)
		if err != nil {
			logger.Error().Err(err).
				Str("language", track.LanguageCode).
				Str("kind", track.Kind.String()).
				Msg("Failed to download subtitle track")
			continue
		}

		path := filepath.Join(cfg.Output.Dir, subtitle.Filename)
		if err := os.WriteFile(path, subtitle.Content, 0o644); err != nil {
			return err
		}

		logger.Info().
			Str("file", path).
			Str("language", track.LanguageCode).
			Str("kind", track.Kind.String()).
			Msg("Wrote subtitle file")
		downloaded++
	}

	if downloaded == 0 {
		logger.Warn().Str("title", movie.Title).Msg("No subtitle tracks matched")
	}
	return nil
}
