package parser

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cinesub/subrip/internal/apperrors"
)

// appleTVHTMLStrategy scrapes the shoebox-uts-api payload from an AppleTV
// HTML page. The payload embeds the same UTS data object the API returns,
// wrapped in a JSON-encoded string under a "d" key.
type appleTVHTMLStrategy struct{}

func (appleTVHTMLStrategy) Name() string { return "appletv-html" }

func (s appleTVHTMLStrategy) Parse(resp Response) (*rawMovie, error) {
	if resp.ContentType != "" && !strings.Contains(resp.ContentType, "text/html") {
		return nil, errShapeMismatch
	}

	reader, err := NewUTF8Reader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, errShapeMismatch
	}
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, errShapeMismatch
	}

	shoebox := strings.TrimSpace(doc.Find(`script#shoebox-uts-api[type="fastboot/shoebox"]`).Text())
	if shoebox == "" {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox-uts-api", nil)
	}

	// The shoebox is a map of JSON-encoded strings; the movie payload is its
	// only meaningful entry.
	var outer map[string]string
	if err := json.Unmarshal([]byte(shoebox), &outer); err != nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox-uts-api", err)
	}
	if len(outer) == 0 {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox-uts-api", nil)
	}

	keys := make([]string, 0, len(outer))
	for k := range outer {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var inner struct {
		D appleTVResponse `json:"d"`
	}
	if err := json.Unmarshal([]byte(outer[keys[0]]), &inner); err != nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "d", err)
	}
	if inner.D.Data.Content == nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "d.data.content", nil)
	}

	return parseAppleTVData(s.Name(), inner.D.Data)
}
