package services

import (
	"testing"

	"github.com/cinesub/subrip/internal/models"
)

func TestBuildFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		year   int
		lang   string
		kind   models.TrackKind
		format models.SubtitleFormat
		want   string
	}{
		{
			name:  "normal vtt",
			title: "Example Movie", year: 2021, lang: "en",
			kind: models.TrackKindNormal, format: models.FormatVTT,
			want: "example.movie.2021.iT.WEB.en.vtt",
		},
		{
			name:  "forced adds suffix",
			title: "Example Movie", year: 2021, lang: "en",
			kind: models.TrackKindForced, format: models.FormatVTT,
			want: "example.movie.2021.iT.WEB.en.forced.vtt",
		},
		{
			name:  "closed captions",
			title: "Example Movie", year: 2021, lang: "en",
			kind: models.TrackKindClosedCaption, format: models.FormatSRT,
			want: "example.movie.2021.iT.WEB.en.cc.srt",
		},
		{
			name:  "year already in title",
			title: "Example Movie 2021", year: 2021, lang: "en",
			kind: models.TrackKindNormal, format: models.FormatVTT,
			want: "example.movie.2021.iT.WEB.en.vtt",
		},
		{
			name:  "punctuation collapses",
			title: "L'Exemple: The Movie!", year: 1999, lang: "fr",
			kind: models.TrackKindNormal, format: models.FormatSRT,
			want: "l.exemple.the.movie.1999.iT.WEB.fr.srt",
		},
		{
			name:  "zero year omitted",
			title: "Example Movie", year: 0, lang: "en",
			kind: models.TrackKindNormal, format: models.FormatVTT,
			want: "example.movie.iT.WEB.en.vtt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BuildFileName(tt.title, tt.year, tt.lang, tt.kind, tt.format)
			if got != tt.want {
				t.Errorf("BuildFileName = %q, want %q", got, tt.want)
			}
		})
	}
}
