package parser

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cinesub/subrip/internal/apperrors"
)

// emberEntry is the per-movie payload inside the fastboot/shoebox store that
// iTunes embeds in its HTML pages.
type emberEntry struct {
	Data struct {
		Attributes struct {
			Name        string `json:"name"`
			ReleaseDate string `json:"releaseDate"`
		} `json:"attributes"`
	} `json:"data"`
	Included []struct {
		Type       string `json:"type"`
		Attributes struct {
			Assets []struct {
				HLSURL string `json:"hlsUrl"`
			} `json:"assets"`
		} `json:"attributes"`
	} `json:"included"`
}

// itunesHTMLStrategy scrapes the shoebox data embedded in an iTunes HTML
// page. Less reliable than the JSON shape; used as fallback.
type itunesHTMLStrategy struct{}

func (itunesHTMLStrategy) Name() string { return "itunes-html" }

func (s itunesHTMLStrategy) Parse(resp Response) (*rawMovie, error) {
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

	contentID, ok := doc.Find(`meta[name="apple:content_id"]`).Attr("content")
	if !ok || contentID == "" {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "apple:content_id", nil)
	}

	shoebox := doc.Find(`script#shoebox-ember-data-store[type="fastboot/shoebox"]`).Text()
	if strings.TrimSpace(shoebox) == "" {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox-ember-data-store", nil)
	}

	var store map[string]emberEntry
	if err := json.Unmarshal([]byte(strings.TrimSpace(shoebox)), &store); err != nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox-ember-data-store", err)
	}

	entry, ok := store[contentID]
	if !ok {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "shoebox entry", nil)
	}
	if entry.Data.Attributes.Name == "" {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "name", nil)
	}
	year, err := yearFromDate(entry.Data.Attributes.ReleaseDate)
	if err != nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "releaseDate", err)
	}

	urls := make([]string, 0, len(entry.Included))
	for _, item := range entry.Included {
		if item.Type != "offer" {
			continue
		}
		for _, asset := range item.Attributes.Assets {
			if asset.HLSURL != "" {
				urls = append(urls, asset.HLSURL)
			}
		}
	}

	raw := &rawMovie{title: entry.Data.Attributes.Name, year: year}
	if len(urls) > 0 {
		raw.candidates = []candidate{{id: contentID, urls: urls}}
	}
	return raw, nil
}
