package models

// Specification is a single label/value row on a product detail sheet
type Specification struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Product represents a sellable item in the catalog.
// Prices are integer currency units; OfflinePrice is the in-store price when set.
type Product struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	Slug             string          `json:"slug" yaml:"slug"`
	Brand            string          `json:"brand" yaml:"brand"`
	BrandID          string          `json:"brandId" yaml:"brandId"`
	CategoryID       string          `json:"categoryId" yaml:"categoryId"`
	SubcategoryID    string          `json:"subcategoryId,omitempty" yaml:"subcategoryId,omitempty"`
	MRP              int64           `json:"mrp" yaml:"mrp"`
	OfflinePrice     *int64          `json:"offlinePrice,omitempty" yaml:"offlinePrice,omitempty"`
	Description      string          `json:"description" yaml:"description"`
	Specifications   []Specification `json:"specifications,omitempty" yaml:"specifications,omitempty"`
	Features         []string        `json:"features,omitempty" yaml:"features,omitempty"`
	Images           []string        `json:"images" yaml:"images"`
	AvailableInStore bool            `json:"availableInStore" yaml:"availableInStore"`
	InStock          bool            `json:"inStock" yaml:"inStock"`
	SKU              string          `json:"sku" yaml:"sku"`
	Featured         bool            `json:"featured" yaml:"featured"`
	NewArrival       bool            `json:"newArrival" yaml:"newArrival"`
	Active           bool            `json:"active" yaml:"active"`
	SEOTitle         string          `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty"`
	SEODescription   string          `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty"`
}

func (p Product) GetID() string   { return p.ID }
func (p Product) GetSlug() string { return p.Slug }
func (p Product) IsActive() bool  { return p.Active }
