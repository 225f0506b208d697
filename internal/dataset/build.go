package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidDataset = errors.New("invalid catalog dataset")
)

// Build validates doc and freezes it into a catalog snapshot stamped with a
// fresh version id. Every problem found is reported, joined under ErrInvalidDataset.
func Build(doc *Document, now time.Time) (*catalog.Catalog, error) {
	c := &catalog.Catalog{
		Version:      uuid.NewString(),
		LoadedAt:     now.UTC(),
		Brands:       clone(doc.Brands),
		Banners:      clone(doc.Banners),
		Testimonials: clone(doc.Testimonials),
		Albums:       clone(doc.Albums),
		Media:        clone(doc.Media),
		Jobs:         clone(doc.Jobs),
		Pages:        clone(doc.Pages),
	}

	// Categories carrying a parent are subcategories wherever they were declared
	for _, cat := range append(clone(doc.Categories), doc.Subcategories...) {
		if cat.IsSubcategory() {
			c.Subcategories = append(c.Subcategories, cat)
		} else {
			c.Categories = append(c.Categories, cat)
		}
	}

	v := &validator{}
	v.categories(c)
	v.brands(c.Brands)
	c.Products = v.products(doc.Products, c)
	v.gallery(c.Albums, c.Media)
	uniqueSlugs(v, "job", c.Jobs)
	uniqueSlugs(v, "page", c.Pages)
	c.Store = v.store(doc.Store)

	if len(v.problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(v.problems...))
	}
	return c, nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

type validator struct {
	problems []error
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Errorf(format, args...))
}

func (v *validator) uniqueIDs(kind string, ids []string) map[string]bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			v.addf("%s with empty id", kind)
			continue
		}
		if seen[id] {
			v.addf("duplicate %s id %q", kind, id)
		}
		seen[id] = true
	}
	return seen
}

// uniqueSlugs rejects two active entities sharing a slug
func uniqueSlugs[T catalog.Entity](v *validator, kind string, items []T) {
	seen := make(map[string]string)
	for _, e := range items {
		if !e.IsActive() {
			continue
		}
		if e.GetSlug() == "" {
			v.addf("%s %q has empty slug", kind, e.GetID())
			continue
		}
		if other, ok := seen[e.GetSlug()]; ok {
			v.addf("%s %q reuses active slug %q of %q", kind, e.GetID(), e.GetSlug(), other)
			continue
		}
		seen[e.GetSlug()] = e.GetID()
	}
}

func (v *validator) categories(c *catalog.Catalog) {
	all := c.AllCategories()
	ids := make([]string, len(all))
	for i, cat := range all {
		ids[i] = cat.ID
	}
	v.uniqueIDs("category", ids)

	top := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		top[cat.ID] = true
		if cat.SportType != "" && !cat.SportType.Valid() {
			v.addf("category %q has unknown sport type %q", cat.ID, cat.SportType)
		}
	}
	for _, sub := range c.Subcategories {
		if !top[sub.ParentID] {
			v.addf("subcategory %q references unknown parent category %q", sub.ID, sub.ParentID)
		}
	}

	uniqueSlugs(v, "category", c.Categories)
	uniqueSlugs(v, "subcategory", c.Subcategories)
}

func (v *validator) brands(brands []models.Brand) {
	ids := make([]string, len(brands))
	for i, b := range brands {
		ids[i] = b.ID
	}
	v.uniqueIDs("brand", ids)
	uniqueSlugs(v, "brand", brands)
}

// products validates references and fills missing brand display names
func (v *validator) products(products []models.Product, c *catalog.Catalog) []models.Product {
	brandNames := make(map[string]string, len(c.Brands))
	for _, b := range c.Brands {
		brandNames[b.ID] = b.Name
	}
	categoryIDs := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categoryIDs[cat.ID] = true
	}
	subcategoryIDs := make(map[string]bool)
	for _, sub := range c.Subcategories {
		subcategoryIDs[sub.ID] = true
	}

	out := make([]models.Product, len(products))
	ids := make([]string, len(products))
	skus := make(map[string]string, len(products))
	for i, p := range products {
		ids[i] = p.ID

		name, ok := brandNames[p.BrandID]
		if !ok {
			v.addf("product %q references unknown brand %q", p.ID, p.BrandID)
		} else if p.Brand == "" {
			p.Brand = name
		}
		if !categoryIDs[p.CategoryID] {
			v.addf("product %q references unknown category %q", p.ID, p.CategoryID)
		}
		if p.SubcategoryID != "" && !subcategoryIDs[p.SubcategoryID] {
			v.addf("product %q references unknown subcategory %q", p.ID, p.SubcategoryID)
		}
		if p.MRP < 0 {
			v.addf("product %q has negative mrp %d", p.ID, p.MRP)
		}
		if p.OfflinePrice != nil && *p.OfflinePrice > p.MRP {
			v.addf("product %q offline price %d exceeds mrp %d", p.ID, *p.OfflinePrice, p.MRP)
		}
		if p.SKU == "" {
			v.addf("product %q has empty sku", p.ID)
		} else if other, dup := skus[p.SKU]; dup {
			v.addf("product %q reuses sku %q of %q", p.ID, p.SKU, other)
		} else {
			skus[p.SKU] = p.ID
		}

		out[i] = p
	}

	v.uniqueIDs("product", ids)
	uniqueSlugs(v, "product", out)
	return out
}

func (v *validator) gallery(albums []models.Album, media []models.MediaItem) {
	ids := make([]string, len(albums))
	for i, a := range albums {
		ids[i] = a.ID
	}
	known := v.uniqueIDs("album", ids)
	uniqueSlugs(v, "album", albums)

	for _, m := range media {
		if !known[m.AlbumID] {
			v.addf("media %q references unknown album %q", m.ID, m.AlbumID)
		}
		if m.Type != models.MediaImage && m.Type != models.MediaVideo {
			v.addf("media %q has unknown type %q", m.ID, m.Type)
		}
	}
}

// store copies the store section so the snapshot does not share it with the document
func (v *validator) store(info *models.StoreInfo) *models.StoreInfo {
	if info == nil {
		return nil
	}
	if info.Name == "" {
		v.addf("store section has empty name")
	}
	out := *info
	out.Phone = clone(info.Phone)
	return &out
}
