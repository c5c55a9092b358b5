package client

import (
	"errors"
	"testing"

	"github.com/cinesub/subrip/internal/apperrors"
	"github.com/cinesub/subrip/internal/models"
)

func TestClassifyURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		url            string
		wantSource     models.SourceKind
		wantStorefront string
		wantMovieID    string
		wantErr        bool
	}{
		{
			name:           "itunes movie",
			url:            "https://itunes.apple.com/us/movie/example-movie/id1234567890",
			wantSource:     models.SourceITunes,
			wantStorefront: "us",
			wantMovieID:    "id1234567890",
		},
		{
			name:           "itunes with query",
			url:            "https://itunes.apple.com/gb/movie/example-movie/id1234567890?uo=4",
			wantSource:     models.SourceITunes,
			wantStorefront: "gb",
			wantMovieID:    "id1234567890",
		},
		{
			name:           "itunes http scheme",
			url:            "http://itunes.apple.com/fr/movie/exemple/id42",
			wantSource:     models.SourceITunes,
			wantStorefront: "fr",
			wantMovieID:    "id42",
		},
		{
			name:           "appletv movie with slug",
			url:            "https://tv.apple.com/us/movie/example-movie/umc.cmc.abc123def",
			wantSource:     models.SourceAppleTV,
			wantStorefront: "us",
			wantMovieID:    "umc.cmc.abc123def",
		},
		{
			name:           "appletv movie without slug",
			url:            "https://tv.apple.com/de/movie/umc.cmc.abc123def",
			wantSource:     models.SourceAppleTV,
			wantStorefront: "de",
			wantMovieID:    "umc.cmc.abc123def",
		},
		{
			name:           "surrounding whitespace tolerated",
			url:            "  https://tv.apple.com/us/movie/example/umc.cmc.xyz  ",
			wantSource:     models.SourceAppleTV,
			wantStorefront: "us",
			wantMovieID:    "umc.cmc.xyz",
		},
		{name: "appletv show rejected", url: "https://tv.apple.com/us/show/example/umc.cmc.abc", wantErr: true},
		{name: "itunes album rejected", url: "https://itunes.apple.com/us/album/example/id123", wantErr: true},
		{name: "unrelated host", url: "https://example.com/us/movie/example/id123", wantErr: true},
		{name: "not a url", url: "example movie 2021", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := classifyURL(tt.url)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("classifyURL(%q) succeeded, want error", tt.url)
				}
				if !errors.Is(err, &apperrors.ErrInvalidURL{}) {
					t.Errorf("error = %v, want ErrInvalidURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyURL(%q) returned error: %v", tt.url, err)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			if got.Storefront != tt.wantStorefront {
				t.Errorf("Storefront = %q, want %q", got.Storefront, tt.wantStorefront)
			}
			if got.MovieID != tt.wantMovieID {
				t.Errorf("MovieID = %q, want %q", got.MovieID, tt.wantMovieID)
			}
		})
	}
}

func TestClassifyURLCanonicalStripsQuery(t *testing.T) {
	t.Parallel()

	got, err := classifyURL("https://itunes.apple.com/us/movie/example-movie/id99?uo=4&at=test")
	if err != nil {
		t.Fatalf("classifyURL returned error: %v", err)
	}
	want := "https://itunes.apple.com/us/movie/example-movie/id99"
	if got.Canonical != want {
		t.Errorf("Canonical = %q, want %q", got.Canonical, want)
	}
}
