package parser

import "testing"

func TestYearFromDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date    string
		want    int
		wantErr bool
	}{
		{"2021-07-09", 2021, false},
		{"1969-12-31", 1969, false},
		{"not-a-date", 0, true},
		{"", 0, true},
		{"2021/07/09", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := yearFromDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("yearFromDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("yearFromDate(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestYearFromEpochMillis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		want int
	}{
		{"mid 2021", 1625788800000, 2021},
		{"epoch", 0, 1970},
		{"one day before epoch", -86400000, 1969},
		{"deep negative", -883612800000, 1942},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yearFromEpochMillis(tt.ms); got != tt.want {
				t.Errorf("yearFromEpochMillis(%d) = %d, want %d", tt.ms, got, tt.want)
			}
		})
	}
}
