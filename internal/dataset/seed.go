package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

// Seed returns the storefront's built-in catalog document
func Seed() (*Document, error) {
	return ParseDocument(bytes.NewReader(seedCatalog))
}
