// Package apperrors tests verify the custom error types (ErrInvalidURL,
// ErrUnsupportedShape, ErrMalformedResponse, ErrSegmentFetch), their Error()
// messages, Is() matching semantics, constructor helpers, and compatibility
// with errors.Is()/errors.As() including through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidURL(t *testing.T) {
	t.Parallel()

	err := NewInvalidURLError("https://example.com/nope")
	if got := err.Error(); got != "https://example.com/nope is not a valid iTunes/AppleTV movie URL" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, &ErrInvalidURL{}) {
		t.Error("errors.Is failed to match ErrInvalidURL")
	}
	wrapped := fmt.Errorf("resolving movie: %w", err)
	if !errors.Is(wrapped, &ErrInvalidURL{}) {
		t.Error("errors.Is failed to match wrapped ErrInvalidURL")
	}
	if errors.Is(err, &ErrUnsupportedShape{}) {
		t.Error("ErrInvalidURL matched a different error type")
	}
}

func TestErrUnsupportedShape(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedShapeError("itunes", []string{"itunes-json", "itunes-html"})
	if got := err.Error(); got != "itunes response matched none of the known shapes [itunes-json itunes-html]" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, &ErrUnsupportedShape{}) {
		t.Error("errors.Is failed to match ErrUnsupportedShape")
	}
}

func TestErrMalformedResponse(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewMalformedResponseError("appletv-json", "content.title", cause)
	if got := err.Error(); got != `malformed appletv-json response: field "content.title": boom` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to unwrap the cause")
	}

	noCause := NewMalformedResponseError("appletv-json", "content.releaseDate", nil)
	if got := noCause.Error(); got != `malformed appletv-json response: field "content.releaseDate" is missing or invalid` {
		t.Errorf("Error() = %q", got)
	}
	if noCause.Unwrap() != nil {
		t.Error("Unwrap() of a cause-less error should be nil")
	}
}

func TestErrSegmentFetch(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewSegmentFetchError("https://cdn.example.com/seg3.webvtt", 3, cause)
	if got := err.Error(); got != "failed to fetch segment 3 from https://cdn.example.com/seg3.webvtt: connection reset" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := fmt.Errorf("downloading track: %w", err)
	var fetchErr *ErrSegmentFetch
	if !errors.As(wrapped, &fetchErr) {
		t.Fatal("errors.As failed to match wrapped ErrSegmentFetch")
	}
	if fetchErr.Index != 3 {
		t.Errorf("Index = %d, want 3", fetchErr.Index)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is failed to unwrap the cause through two layers")
	}
}
