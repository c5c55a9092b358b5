package parser

import (
	"context"
	"errors"

	"github.com/cinesub/subrip/internal/apperrors"
	"github.com/cinesub/subrip/internal/config"
	"github.com/cinesub/subrip/internal/metrics"
	"github.com/cinesub/subrip/internal/models"
)

// Validator is the predicate used to filter playlist candidates. A false
// result means "skip this candidate"; it is never an error.
type Validator interface {
	Validate(ctx context.Context, url string) bool
}

// Extractor normalizes platform responses into MovieRecords by trying each
// known response shape for the source kind in a fixed order.
type Extractor struct {
	validator Validator
}

// NewExtractor creates an extractor using the given playlist validator.
func NewExtractor(validator Validator) *Extractor {
	return &Extractor{validator: validator}
}

// strategies lists the known shapes per source in fallback order: the
// structured shape first, the HTML-embedded shape after it. Fallback never
// crosses source kinds.
var strategies = map[models.SourceKind][]strategy{
	models.SourceITunes:  {itunesJSONStrategy{}, itunesHTMLStrategy{}},
	models.SourceAppleTV: {appleTVJSONStrategy{}, appleTVHTMLStrategy{}},
}

// Extract produces a normalized MovieRecord from a raw platform response.
// A record with an empty asset list is a legitimate outcome, distinct from a
// malformed page. When every strategy mismatches the shape, an
// ErrUnsupportedShape is returned; when a strategy matched but the page was
// unusable, the first such ErrMalformedResponse is returned instead.
func (e *Extractor) Extract(ctx context.Context, source models.SourceKind, resp Response) (*models.MovieRecord, error) {
	logger := config.GetLogger()

	list, ok := strategies[source]
	if !ok {
		return nil, apperrors.NewUnsupportedShapeError(string(source), nil)
	}

	var malformed error
	tried := make([]string, 0, len(list))

	for _, s := range list {
		tried = append(tried, s.Name())

		raw, err := s.Parse(resp)
		if err != nil {
			if errors.Is(err, errShapeMismatch) {
				logger.Debug().Str("source", string(source)).Str("shape", s.Name()).Msg("Response shape did not match, trying next strategy")
				continue
			}
			if errors.Is(err, &apperrors.ErrMalformedResponse{}) {
				logger.Warn().Err(err).Str("source", string(source)).Str("shape", s.Name()).Msg("Response matched shape but is malformed, trying next strategy")
				if malformed == nil {
					malformed = err
				}
				continue
			}
			metrics.ExtractionsTotal.WithLabelValues(string(source), "error").Inc()
			return nil, err
		}

		record := &models.MovieRecord{
			Source:      source,
			Title:       raw.title,
			ReleaseYear: raw.year,
			Assets:      e.selectAssets(ctx, raw.candidates),
		}

		logger.Info().
			Str("source", string(source)).
			Str("shape", s.Name()).
			Str("title", record.Title).
			Int("year", record.ReleaseYear).
			Int("assets", len(record.Assets)).
			Msg("Extracted movie record")
		metrics.ExtractionsTotal.WithLabelValues(string(source), "success").Inc()
		return record, nil
	}

	metrics.ExtractionsTotal.WithLabelValues(string(source), "error").Inc()
	if malformed != nil {
		return nil, malformed
	}
	return nil, apperrors.NewUnsupportedShapeError(string(source), tried)
}

// selectAssets applies the selection policy: the first rendition per distinct
// platform id whose sub-playlist validates. Scanning a candidate's renditions
// stops at the first valid one; candidates with no valid rendition are
// dropped silently.
func (e *Extractor) selectAssets(ctx context.Context, candidates []candidate) []models.AssetRef {
	logger := config.GetLogger()

	assets := make([]models.AssetRef, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))

	for _, c := range candidates {
		if seen[c.id] {
			continue
		}
		seen[c.id] = true

		for _, u := range c.urls {
			if e.validator.Validate(ctx, u) {
				assets = append(assets, models.AssetRef{ID: c.id, PlaylistURL: u})
				break
			}
			logger.Debug().Str("assetID", c.id).Str("url", u).Msg("Skipping playlist candidate that failed validation")
		}
	}
	return assets
}
