package service

import (
	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// ProductCard is a product with its derived prices, as rendered in grids
type ProductCard struct {
	models.Product
	EffectivePrice  int64 `json:"effectivePrice"`
	DiscountPercent int   `json:"discountPercent"`
}

// BrandFacet is a brand checkbox in the listing sidebar
type BrandFacet struct {
	models.Brand
	Count int `json:"count"`
}

// ProductListing is the result of a listing query
type ProductListing struct {
	Products    []ProductCard       `json:"products"`
	Total       int                 `json:"total"`
	BrandFacets []BrandFacet        `json:"brandFacets"`
	PriceBounds *catalog.PriceRange `json:"priceBounds,omitempty"`
}

// BrandSection is one brand's products inside a category or subcategory page
type BrandSection struct {
	Brand    models.Brand  `json:"brand"`
	Products []ProductCard `json:"products"`
}

// CategorySection is one category's products inside a brand page
type CategorySection struct {
	Category models.Category `json:"category"`
	Products []ProductCard   `json:"products"`
}

// CategoryView backs the category page
type CategoryView struct {
	Category        models.Category   `json:"category"`
	Subcategories   []models.Category `json:"subcategories"`
	ProductsByBrand []BrandSection    `json:"productsByBrand"`
	AvailableBrands []models.Brand    `json:"availableBrands"`
	Total           int               `json:"total"`
}

// SubcategoryView backs the subcategory page
type SubcategoryView struct {
	Subcategory     models.Category  `json:"subcategory"`
	Parent          *models.Category `json:"parent,omitempty"`
	ProductsByBrand []BrandSection   `json:"productsByBrand"`
	Total           int              `json:"total"`
}

// BrandView backs the brand page
type BrandView struct {
	Brand              models.Brand      `json:"brand"`
	ProductsByCategory []CategorySection `json:"productsByCategory"`
	Total              int               `json:"total"`
}

// ProductDetail backs the product page
type ProductDetail struct {
	ProductCard
	BrandInfo   *models.Brand    `json:"brandInfo,omitempty"`
	Category    *models.Category `json:"category,omitempty"`
	Subcategory *models.Category `json:"subcategory,omitempty"`
	Related     []ProductCard    `json:"related"`
}

// SearchResult is the outcome of a free-text search
type SearchResult struct {
	Query    string        `json:"query"`
	Products []ProductCard `json:"products"`
	Total    int           `json:"total"`
}

// HomeView backs the landing page
type HomeView struct {
	Banners        []models.Banner      `json:"banners"`
	FeaturedBrands []models.Brand       `json:"featuredBrands"`
	Categories     []models.Category    `json:"categories"`
	Featured       []ProductCard        `json:"featured"`
	NewArrivals    []ProductCard        `json:"newArrivals"`
	Testimonials   []models.Testimonial `json:"testimonials"`
}

// AlbumSummary is an album tile on the gallery page
type AlbumSummary struct {
	models.Album
	Photos int `json:"photos"`
	Videos int `json:"videos"`
}

// AlbumView backs a single album page
type AlbumView struct {
	Album  models.Album       `json:"album"`
	Media  []models.MediaItem `json:"media"`
	Photos int                `json:"photos"`
	Videos int                `json:"videos"`
}

func toCard(p models.Product) ProductCard {
	return ProductCard{
		Product:         p,
		EffectivePrice:  catalog.EffectivePrice(p),
		DiscountPercent: catalog.ProductDiscount(p),
	}
}

func toCards(products []models.Product) []ProductCard {
	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = toCard(p)
	}
	return cards
}
