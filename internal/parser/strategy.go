package parser

import (
	"errors"
)

// Response is a raw platform response body plus its declared content type.
// The extractor is agnostic to how the response was obtained.
type Response struct {
	ContentType string
	Body        []byte
}

// candidate is one potential playable asset discovered by a strategy,
// carrying its alternative rendition URLs in source order. Validation and
// selection happen in the extractor, not in the strategies.
type candidate struct {
	id   string
	urls []string
}

// rawMovie is a strategy's pre-validation view of a movie page.
type rawMovie struct {
	title      string
	year       int
	candidates []candidate
}

// strategy parses one known response shape. Parse returns errShapeMismatch
// when the response is not in this shape, an ErrMalformedResponse when the
// shape matched but required fields are unusable, and a rawMovie otherwise.
type strategy interface {
	Name() string
	Parse(resp Response) (*rawMovie, error)
}

// errShapeMismatch makes the extractor move on to the next strategy.
var errShapeMismatch = errors.New("response shape mismatch")
