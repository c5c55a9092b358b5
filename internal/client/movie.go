package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/models"
	"github.com/cinesub/subrip/internal/parser"
)

// utsBaseParams are the fixed query parameters the AppleTV UTS API expects
// from a web caller. Only the storefront id varies per request.
var utsBaseParams = url.Values{
	"utscf":  {"OjAAAAAAAAA~"},
	"utsk":   {"6e3013c6d6fae3c2::::::235656c069bb0efb"},
	"caller": {"web"},
	"v":      {"58"},
	"pfm":    {"web"},
}

// GetMovie resolves a movie URL into a normalized MovieRecord. iTunes URLs
// are fetched directly; AppleTV URLs are resolved through the UTS API using
// the storefront table to map the country code to a storefront id.
func (c *client) GetMovie(ctx context.Context, rawURL string) (*models.MovieRecord, error) {
	logger := config.GetLogger()

	parsed, err := classifyURL(rawURL)
	if err != nil {
		return nil, err
	}

	var requestURL string
	switch parsed.Source {
	case models.SourceITunes:
		requestURL = parsed.Canonical
	case models.SourceAppleTV:
		requestURL, err = c.appleTVAPIURL(parsed)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("source", string(parsed.Source)).
		Str("movieID", parsed.MovieID).
		Str("url", requestURL).
		Msg("Fetching movie page")

	resp, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	return c.extractor.Extract(ctx, parsed.Source, resp)
}

// appleTVAPIURL builds the UTS movie endpoint URL for a classified AppleTV
// page URL.
func (c *client) appleTVAPIURL(parsed movieURL) (string, error) {
	if c.storefronts == nil {
		return "", fmt.Errorf("no storefront table loaded, cannot resolve AppleTV URLs")
	}
	storefrontID, ok := c.storefronts.Lookup(parsed.Storefront)
	if !ok {
		return "", fmt.Errorf("unknown storefront country code %q", parsed.Storefront)
	}

	params := url.Values{}
	for key, values := range utsBaseParams {
		params[key] = values
	}
	params.Set("sf", fmt.Sprintf("%d", storefrontID))

	return c.apiBaseURL + parsed.MovieID + "?" + params.Encode(), nil
}

// get performs a GET with the configured User-Agent and returns the body
// paired with its content type for shape detection.
func (c *client) get(ctx context.Context, requestURL string) (parser.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return parser.Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return parser.Response{}, fmt.Errorf("failed to fetch movie page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parser.Response{}, fmt.Errorf("movie page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return parser.Response{}, fmt.Errorf("failed to read movie page body: %w", err)
	}

	return parser.Response{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
