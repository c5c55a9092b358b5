package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps an io.Reader with automatic character encoding
// detection and conversion to UTF-8, so that HTML pages in any encoding can
// be handed to goquery safely.
//
// The charset is detected from meta tags, XML declarations, byte order
// marks, or heuristics, in that order. UTF-8 input passes through untouched.
func NewUTF8Reader(body io.Reader) (io.Reader, error) {
	return charset.NewReader(body, "")
}
