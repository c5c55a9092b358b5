package parser

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/cinesub/subrip/internal/apperrors"
)

// appleTVResponse is the structured shape returned by the UTS movie API.
type appleTVResponse struct {
	Data appleTVData `json:"data"`
}

type appleTVData struct {
	Content   *appleTVContent            `json:"content"`
	Playables map[string]appleTVPlayable `json:"playables"`
}

type appleTVContent struct {
	Title       string `json:"title"`
	ReleaseDate *int64 `json:"releaseDate"` // epoch milliseconds, may be negative
}

type appleTVPlayable struct {
	IsITunes           bool   `json:"isItunes"`
	ExternalID         string `json:"externalId"`
	ITunesMediaAPIData struct {
		Offers []struct {
			HLSURL string `json:"hlsUrl"`
		} `json:"offers"`
	} `json:"itunesMediaApiData"`
}

// appleTVJSONStrategy parses the UTS movie API response.
type appleTVJSONStrategy struct{}

func (appleTVJSONStrategy) Name() string { return "appletv-json" }

func (s appleTVJSONStrategy) Parse(resp Response) (*rawMovie, error) {
	if resp.ContentType != "" && !strings.Contains(resp.ContentType, "application/json") {
		return nil, errShapeMismatch
	}

	var payload appleTVResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, errShapeMismatch
	}
	if payload.Data.Content == nil {
		return nil, errShapeMismatch
	}

	return parseAppleTVData(s.Name(), payload.Data)
}

// parseAppleTVData turns a decoded UTS data object into a rawMovie. Shared
// between the API-JSON strategy and the shoebox-HTML strategy, which embeds
// the same object in the page.
func parseAppleTVData(shape string, data appleTVData) (*rawMovie, error) {
	if data.Content.Title == "" {
		return nil, apperrors.NewMalformedResponseError(shape, "content.title", nil)
	}
	if data.Content.ReleaseDate == nil {
		return nil, apperrors.NewMalformedResponseError(shape, "content.releaseDate", nil)
	}

	raw := &rawMovie{
		title: data.Content.Title,
		year:  yearFromEpochMillis(*data.Content.ReleaseDate),
	}

	// JSON object order is not observable in Go; sort keys for a stable
	// candidate order.
	keys := make([]string, 0, len(data.Playables))
	for k := range data.Playables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		playable := data.Playables[k]
		if !playable.IsITunes || playable.ExternalID == "" {
			continue
		}
		urls := make([]string, 0, len(playable.ITunesMediaAPIData.Offers))
		for _, offer := range playable.ITunesMediaAPIData.Offers {
			if offer.HLSURL != "" {
				urls = append(urls, offer.HLSURL)
			}
		}
		if len(urls) > 0 {
			raw.candidates = append(raw.candidates, candidate{id: playable.ExternalID, urls: urls})
		}
	}
	return raw, nil
}
