package catalog

import (
	"strings"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// Scope narrows a product list. Empty fields impose no constraint.
type Scope struct {
	CategoryID    string
	SubcategoryID string
	BrandID       string
	SportType     models.SportType
}

// IsZero reports whether the scope imposes no constraint at all
func (s Scope) IsZero() bool {
	return s == Scope{}
}

// SportCategoryIDs returns the ids of active categories tagged with sport
func SportCategoryIDs(categories []models.Category, sport models.SportType) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, c := range categories {
		if c.Active && c.SportType == sport {
			ids[c.ID] = struct{}{}
		}
	}
	return ids
}

// FilterByScope keeps active products matching every field set in s.
// Sport type is matched through the product's category, looked up in categories.
func FilterByScope(products []models.Product, categories []models.Category, s Scope) []models.Product {
	var sportIDs map[string]struct{}
	if s.SportType != "" {
		sportIDs = SportCategoryIDs(categories, s.SportType)
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !p.Active {
			continue
		}
		if s.CategoryID != "" && p.CategoryID != s.CategoryID {
			continue
		}
		if s.SubcategoryID != "" && p.SubcategoryID != s.SubcategoryID {
			continue
		}
		if s.BrandID != "" && p.BrandID != s.BrandID {
			continue
		}
		if sportIDs != nil {
			if _, ok := sportIDs[p.CategoryID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// FilterByPriceRange keeps products whose effective price lies in [min, max].
// A negative bound or an inverted range yields nothing.
func FilterByPriceRange(products []models.Product, min, max int64) []models.Product {
	out := make([]models.Product, 0, len(products))
	if min < 0 || max < 0 {
		return out
	}
	for _, p := range products {
		price := EffectivePrice(p)
		if price >= min && price <= max {
			out = append(out, p)
		}
	}
	return out
}

// FilterByBrands keeps products whose brand is in brandIDs.
// An empty set means no brand filter and returns the input unchanged.
func FilterByBrands(products []models.Product, brandIDs map[string]struct{}) []models.Product {
	if len(brandIDs) == 0 {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, ok := brandIDs[p.BrandID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// BrandSet builds the set form FilterByBrands expects, skipping blanks
func BrandSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// SearchText keeps active products where the trimmed, lower-cased query is a
// substring of the name, brand, description or sku. A blank query matches nothing.
func SearchText(products []models.Product, query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Product, 0)
	if term == "" {
		return out
	}
	for _, p := range products {
		if !p.Active {
			continue
		}
		if matchesTerm(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matchesTerm(p models.Product, term string) bool {
	for _, field := range []string{p.Name, p.Brand, p.Description, p.SKU} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
