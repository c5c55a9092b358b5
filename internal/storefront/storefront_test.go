package storefront

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	table, err := Load(strings.NewReader(`{"US": 143441, "gb": 143444}`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	tests := []struct {
		code   string
		wantID int
		wantOK bool
	}{
		{"US", 143441, true},
		{"us", 143441, true},
		{"GB", 143444, true},
		{"Gb", 143444, true},
		{"DE", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			id, ok := table.Lookup(tt.code)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("Lookup(%q) = (%d, %v), want (%d, %v)", tt.code, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := Load(strings.NewReader(`not json`)); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table := Default()
	if table.Len() == 0 {
		t.Fatal("embedded table is empty")
	}
	if id, ok := table.Lookup("us"); !ok || id != 143441 {
		t.Errorf("Lookup(us) = (%d, %v), want (143441, true)", id, ok)
	}
}
