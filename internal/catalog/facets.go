package catalog

import (
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// BrandCount is the number of active products carrying a brand
type BrandCount struct {
	BrandID string `json:"brandId"`
	Count   int    `json:"count"`
}

// BrandCounts counts active products per brand, in first-seen brand order
func BrandCounts(products []models.Product) []BrandCount {
	groups := GroupBy(Active(products), func(p models.Product) string { return p.BrandID })
	counts := make([]BrandCount, len(groups))
	for i, g := range groups {
		counts[i] = BrandCount{BrandID: g.Key, Count: len(g.Items)}
	}
	return counts
}

// PriceRange is a closed interval of effective prices
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// PriceBounds returns the lowest and highest effective price, ok is false for no products
func PriceBounds(products []models.Product) (PriceRange, bool) {
	if len(products) == 0 {
		return PriceRange{}, false
	}
	r := PriceRange{Min: EffectivePrice(products[0]), Max: EffectivePrice(products[0])}
	for _, p := range products[1:] {
		price := EffectivePrice(p)
		r.Min = min(r.Min, price)
		r.Max = max(r.Max, price)
	}
	return r, true
}

// Featured returns up to limit active featured products in input order
func Featured(products []models.Product, limit int) []models.Product {
	return Limit(flagged(products, func(p models.Product) bool { return p.Featured }), limit)
}

// NewArrivals returns up to limit active new-arrival products in input order
func NewArrivals(products []models.Product, limit int) []models.Product {
	return Limit(flagged(products, func(p models.Product) bool { return p.NewArrival }), limit)
}

func flagged(products []models.Product, flag func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.Active && flag(p) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns other active products sharing p's subcategory, falling back
// to its category when the subcategory has no siblings.
func Related(products []models.Product, p models.Product, limit int) []models.Product {
	siblings := func(same func(models.Product) bool) []models.Product {
		out := make([]models.Product, 0)
		for _, other := range products {
			if other.Active && other.ID != p.ID && same(other) {
				out = append(out, other)
			}
		}
		return out
	}

	var related []models.Product
	if p.SubcategoryID != "" {
		related = siblings(func(o models.Product) bool { return o.SubcategoryID == p.SubcategoryID })
	}
	if len(related) == 0 {
		related = siblings(func(o models.Product) bool { return o.CategoryID == p.CategoryID })
	}
	return Limit(related, limit)
}
