// Package storefront maps regional storefront codes (e.g. "US", "GB") to the
// numeric identifiers the AppleTV UTS API expects in its "sf" parameter.
//
// The table is an explicitly owned value: load it once before the first
// AppleTV request and pass it to whoever needs it. There is no process-wide
// cache.
package storefront

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table maps upper-case storefront codes to platform-internal numeric ids.
type Table struct {
	ids map[string]int
}

// Load reads a JSON object of the form {"US": 143441, "GB": 143444, ...}.
func Load(r io.Reader) (*Table, error) {
	var raw map[string]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode storefront table: %w", err)
	}

	ids := make(map[string]int, len(raw))
	for code, id := range raw {
		ids[strings.ToUpper(code)] = id
	}
	return &Table{ids: ids}, nil
}

// LoadFile loads a storefront table from a JSON file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storefront table: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Lookup returns the numeric id for a storefront code, matched
// case-insensitively. The second return value reports whether the code is
// known.
func (t *Table) Lookup(code string) (int, bool) {
	id, ok := t.ids[strings.ToUpper(code)]
	return id, ok
}

// Len returns the number of storefronts in the table.
func (t *Table) Len() int {
	return len(t.ids)
}
