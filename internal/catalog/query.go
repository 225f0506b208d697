package catalog

import (
	"math"
	"strings"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// ProductQuery is the full set of listing parameters chosen in the storefront
type ProductQuery struct {
	Scope    Scope
	BrandIDs map[string]struct{}
	MinPrice *int64
	MaxPrice *int64
	Search   string
	Sort     SortKey
}

// Apply runs a listing query the way the products page composes it:
// scope, then brands, then price, then text search when the query is not blank, then sort.
func Apply(products []models.Product, categories []models.Category, q ProductQuery) []models.Product {
	result := FilterByScope(products, categories, q.Scope)
	result = FilterByBrands(result, q.BrandIDs)

	if q.MinPrice != nil || q.MaxPrice != nil {
		lo, hi := int64(0), int64(math.MaxInt64)
		if q.MinPrice != nil {
			lo = *q.MinPrice
		}
		if q.MaxPrice != nil {
			hi = *q.MaxPrice
		}
		result = FilterByPriceRange(result, lo, hi)
	}

	if strings.TrimSpace(q.Search) != "" {
		result = SearchText(result, q.Search)
	}

	return SortProducts(result, q.Sort)
}
