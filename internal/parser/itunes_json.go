package parser

import (
	"encoding/json"
	"strings"

	"github.com/cinesub/subrip/internal/apperrors"
)

// itunesPage is the structured-JSON shape of an iTunes store movie page.
// Fields are validated in Parse; anything beyond what extraction needs is
// left undeclared.
type itunesPage struct {
	PageData struct {
		ID string `json:"id"`
	} `json:"pageData"`
	StorePlatformData struct {
		ProductDV struct {
			Results map[string]itunesProduct `json:"results"`
		} `json:"product-dv"`
	} `json:"storePlatformData"`
}

type itunesProduct struct {
	NameRaw     string        `json:"nameRaw"`
	ReleaseDate string        `json:"releaseDate"`
	Offers      []itunesOffer `json:"offers"`
}

type itunesOffer struct {
	Type   string `json:"type"`
	Assets []struct {
		HLSURL string `json:"hlsUrl"`
	} `json:"assets"`
}

// itunesJSONStrategy parses the authoritative JSON response of an iTunes
// movie page.
type itunesJSONStrategy struct{}

func (itunesJSONStrategy) Name() string { return "itunes-json" }

func (s itunesJSONStrategy) Parse(resp Response) (*rawMovie, error) {
	if resp.ContentType != "" && !strings.Contains(resp.ContentType, "application/json") {
		return nil, errShapeMismatch
	}

	var page itunesPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, errShapeMismatch
	}
	if page.PageData.ID == "" {
		return nil, errShapeMismatch
	}

	product, ok := page.StorePlatformData.ProductDV.Results[page.PageData.ID]
	if !ok {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "storePlatformData.product-dv.results", nil)
	}
	if product.NameRaw == "" {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "nameRaw", nil)
	}
	year, err := yearFromDate(product.ReleaseDate)
	if err != nil {
		return nil, apperrors.NewMalformedResponseError(s.Name(), "releaseDate", err)
	}

	// All buy/rent renditions belong to the one logical iTunes asset.
	urls := make([]string, 0, len(product.Offers))
	for _, offer := range product.Offers {
		if offer.Type != "buy" && offer.Type != "rent" {
			continue
		}
		for _, asset := range offer.Assets {
			if asset.HLSURL != "" {
				urls = append(urls, asset.HLSURL)
			}
		}
	}

	raw := &rawMovie{title: product.NameRaw, year: year}
	if len(urls) > 0 {
		raw.candidates = []candidate{{id: page.PageData.ID, urls: urls}}
	}
	return raw, nil
}
