package storefront

import (
	"bytes"
	_ "embed"
)

//go:embed storefronts.json
var defaultStorefronts []byte

// Default returns the built-in storefront table. It covers the storefronts
// the platform is known to operate; a table loaded from disk takes precedence
// when one is configured.
func Default() *Table {
	table, err := Load(bytes.NewReader(defaultStorefronts))
	if err != nil {
		// The embedded table is validated by tests; a decode failure here is
		// a build defect.
		panic(err)
	}
	return table
}
