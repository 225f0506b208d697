package catalog

import (
	"math"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// EffectivePrice is the price used for comparisons: the offline price when
// set and positive, otherwise the list price.
func EffectivePrice(p models.Product) int64 {
	if p.OfflinePrice != nil && *p.OfflinePrice > 0 {
		return *p.OfflinePrice
	}
	return p.MRP
}

// DiscountPercent returns round(100 * (mrp - price) / mrp).
// It is 0 when there is no discount or mrp is not positive.
func DiscountPercent(mrp, price int64) int {
	if mrp <= 0 || price >= mrp {
		return 0
	}
	return int(math.Round(100 * float64(mrp-price) / float64(mrp)))
}

// ProductDiscount is DiscountPercent applied to a product's own prices
func ProductDiscount(p models.Product) int {
	return DiscountPercent(p.MRP, EffectivePrice(p))
}
