package apperrors

import (
	"fmt"
)

// ErrInvalidURL is returned when a user-supplied URL matches neither the
// iTunes nor the AppleTV movie URL pattern.
type ErrInvalidURL struct {
	URL string
}

// Error implements the error interface.
func (e *ErrInvalidURL) Error() string {
	return fmt.Sprintf("%s is not a valid iTunes/AppleTV movie URL", e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidURL) Is(target error) bool {
	_, ok := target.(*ErrInvalidURL)
	return ok
}

// NewInvalidURLError creates a new ErrInvalidURL.
func NewInvalidURLError(url string) *ErrInvalidURL {
	return &ErrInvalidURL{URL: url}
}

// ErrUnsupportedShape is returned when none of the parsing strategies for a
// source kind matched the response.
type ErrUnsupportedShape struct {
	Source string
	Shapes []string
}

// Error implements the error interface.
func (e *ErrUnsupportedShape) Error() string {
	return fmt.Sprintf("%s response matched none of the known shapes %v", e.Source, e.Shapes)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnsupportedShape) Is(target error) bool {
	_, ok := target.(*ErrUnsupportedShape)
	return ok
}

// NewUnsupportedShapeError creates a new ErrUnsupportedShape.
func NewUnsupportedShapeError(source string, shapes []string) *ErrUnsupportedShape {
	return &ErrUnsupportedShape{Source: source, Shapes: shapes}
}

// ErrMalformedResponse is returned when a response structurally matched a
// parsing strategy but a required field was missing or unparseable.
type ErrMalformedResponse struct {
	Shape string
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s response: field %q: %v", e.Shape, e.Field, e.Cause)
	}
	return fmt.Sprintf("malformed %s response: field %q is missing or invalid", e.Shape, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}

// Unwrap returns the underlying cause, if any.
func (e *ErrMalformedResponse) Unwrap() error {
	return e.Cause
}

// NewMalformedResponseError creates a new ErrMalformedResponse.
func NewMalformedResponseError(shape, field string, cause error) *ErrMalformedResponse {
	return &ErrMalformedResponse{Shape: shape, Field: field, Cause: cause}
}

// ErrSegmentFetch is returned when any segment download of a batch fails.
// The batch fails as a whole; no partial document is produced.
type ErrSegmentFetch struct {
	URL   string
	Index int
	Cause error
}

// Error implements the error interface.
func (e *ErrSegmentFetch) Error() string {
	return fmt.Sprintf("failed to fetch segment %d from %s: %v", e.Index, e.URL, e.Cause)
}

// Is allows for error checking with errors.Is().
func (e *ErrSegmentFetch) Is(target error) bool {
	_, ok := target.(*ErrSegmentFetch)
	return ok
}

// Unwrap returns the underlying transport or decode error.
func (e *ErrSegmentFetch) Unwrap() error {
	return e.Cause
}

// NewSegmentFetchError creates a new ErrSegmentFetch.
func NewSegmentFetchError(url string, index int, cause error) *ErrSegmentFetch {
	return &ErrSegmentFetch{URL: url, Index: index, Cause: cause}
}
