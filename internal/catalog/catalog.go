package catalog

import (
	"cmp"
	"slices"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// Catalog is an immutable point-in-time snapshot of every collection the
// storefront reads. Callers must treat the slices as read-only.
type Catalog struct {
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loadedAt"`

	Categories    []models.Category    `json:"categories"`
	Subcategories []models.Category    `json:"subcategories"`
	Brands        []models.Brand       `json:"brands"`
	Products      []models.Product     `json:"products"`
	Banners       []models.Banner      `json:"banners"`
	Testimonials  []models.Testimonial `json:"testimonials"`
	Albums        []models.Album       `json:"albums"`
	Media         []models.MediaItem   `json:"media"`
	Jobs          []models.Job         `json:"jobs"`
	Pages         []models.Page        `json:"pages"`
	Store         *models.StoreInfo    `json:"store,omitempty"`
}

// AllCategories returns top-level categories followed by subcategories
func (c *Catalog) AllCategories() []models.Category {
	all := make([]models.Category, 0, len(c.Categories)+len(c.Subcategories))
	all = append(all, c.Categories...)
	return append(all, c.Subcategories...)
}

// Category looks up an active category or subcategory by id
func (c *Catalog) Category(id string) (models.Category, bool) {
	if cat, ok := FindByID(c.Categories, id); ok {
		return cat, true
	}
	return FindByID(c.Subcategories, id)
}

// Brand looks up an active brand by id
func (c *Catalog) Brand(id string) (models.Brand, bool) {
	return FindByID(c.Brands, id)
}

// SubcategoriesOf returns the active subcategories of parentID by display order
func (c *Catalog) SubcategoriesOf(parentID string) []models.Category {
	children := make([]models.Category, 0)
	for _, s := range c.Subcategories {
		if s.ParentID == parentID {
			children = append(children, s)
		}
	}
	return ActiveByOrder(children)
}

// TopLevelCategories returns active categories without a parent by display order
func (c *Catalog) TopLevelCategories() []models.Category {
	top := make([]models.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if !cat.IsSubcategory() {
			top = append(top, cat)
		}
	}
	return ActiveByOrder(top)
}

// Query runs a listing query against the snapshot's products
func (c *Catalog) Query(q ProductQuery) []models.Product {
	return Apply(c.Products, c.Categories, q)
}

// MediaOf returns an album's media by display order, optionally narrowed to one type
func (c *Catalog) MediaOf(albumID string, mediaType models.MediaType) []models.MediaItem {
	items := make([]models.MediaItem, 0)
	for _, m := range c.Media {
		if m.AlbumID != albumID {
			continue
		}
		if mediaType != "" && m.Type != mediaType {
			continue
		}
		items = append(items, m)
	}
	return sortByOrder(items)
}

func sortByOrder[T Ranked](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(a.GetOrder(), b.GetOrder())
	})
	return out
}
