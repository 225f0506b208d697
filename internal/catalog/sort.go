package catalog

import (
	"cmp"
	"slices"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects a product ordering
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
)

// SortKeys lists the canonical keys accepted by ParseSortKey
var SortKeys = []SortKey{SortFeatured, SortPriceAsc, SortPriceDesc, SortName}

// ParseSortKey maps user input to a key. The storefront's "price-low" and
// "price-high" are aliases; anything unknown falls back to featured.
func ParseSortKey(s string) SortKey {
	switch s {
	case "price-asc", "price-low":
		return SortPriceAsc
	case "price-desc", "price-high":
		return SortPriceDesc
	case "name":
		return SortName
	default:
		return SortFeatured
	}
}

// SortProducts returns a new, stably ordered copy of products
func SortProducts(products []models.Product, key SortKey) []models.Product {
	out := slices.Clone(products)
	if out == nil {
		out = []models.Product{}
	}

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(EffectivePrice(a), EffectivePrice(b))
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(EffectivePrice(b), EffectivePrice(a))
		})
	case SortName:
		// Collators keep scratch buffers, so each call gets its own
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	default:
		return partitionFeatured(out)
	}
	return out
}

// partitionFeatured moves featured products to the front, keeping relative order
func partitionFeatured(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	for _, p := range products {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}
