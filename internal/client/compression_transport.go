package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// compressionTransport advertises gzip, brotli, and zstd support on outgoing
// requests and transparently decompresses responses. Apple's CDN picks
// whichever it prefers per edge, so the client has to handle all three.
type compressionTransport struct {
	base http.RoundTripper
}

func newCompressionTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &compressionTransport{base: base}
}

func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Work on a shallow clone so the caller's request stays untouched.
	clone := new(http.Request)
	*clone = *req
	clone.Header = req.Header.Clone()
	if clone.Header.Get("Accept-Encoding") == "" {
		clone.Header.Set("Accept-Encoding", "gzip, br, zstd")
	}

	resp, err := t.base.RoundTrip(clone)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	var decoded io.ReadCloser
	switch outerEncoding(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = gz
	case "br":
		decoded = io.NopCloser(brotli.NewReader(resp.Body))
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = zr.IOReadCloser()
	default:
		// Identity or something we did not ask for.
		return resp, nil
	}

	resp.Body = &decodedBody{decoder: decoded, wire: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	return resp, nil
}

// outerEncoding returns the last (outermost) coding in a Content-Encoding
// header, lowercased. That is the one to strip first.
func outerEncoding(header string) string {
	parts := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}

// decodedBody closes both the decompressor and the underlying wire body.
type decodedBody struct {
	decoder io.ReadCloser
	wire    io.ReadCloser
}

func (d *decodedBody) Read(p []byte) (int, error) { return d.decoder.Read(p) }

func (d *decodedBody) Close() error {
	decErr := d.decoder.Close()
	if wireErr := d.wire.Close(); decErr == nil {
		return wireErr
	}
	return decErr
}
