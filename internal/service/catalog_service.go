package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/repository"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrBrandNotFound       = errors.New("brand not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrAlbumNotFound       = errors.New("album not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrPageNotFound        = errors.New("page not found")
	ErrStoreInfoNotFound   = errors.New("store info not found")
)

// Limits applied by the storefront's landing and detail pages
const (
	HomeFeaturedLimit     = 8
	HomeNewArrivalsLimit  = 4
	HomeTestimonialsLimit = 3
	RelatedProductsLimit  = 4
)

// CatalogService composes catalog queries into the views the storefront renders.
// Each call reads one snapshot, so a concurrent reload never mixes versions.
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) snapshot(ctx context.Context) (*catalog.Catalog, error) {
	c, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return c, nil
}

// ListProducts runs a listing query and derives the sidebar facets from the scoped set
func (s *CatalogService) ListProducts(ctx context.Context, q catalog.ProductQuery) (*ProductListing, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	scoped := catalog.FilterByScope(c.Products, c.Categories, q.Scope)
	products := c.Query(q)

	listing := &ProductListing{
		Products:    toCards(products),
		Total:       len(products),
		BrandFacets: brandFacets(c, scoped),
	}
	if bounds, ok := catalog.PriceBounds(scoped); ok {
		listing.PriceBounds = &bounds
	}
	return listing, nil
}

// brandFacets lists every active brand by display order with its count in products
func brandFacets(c *catalog.Catalog, products []models.Product) []BrandFacet {
	counts := make(map[string]int)
	for _, bc := range catalog.BrandCounts(products) {
		counts[bc.BrandID] = bc.Count
	}

	brands := catalog.ActiveByOrder(c.Brands)
	facets := make([]BrandFacet, len(brands))
	for i, b := range brands {
		facets[i] = BrandFacet{Brand: b, Count: counts[b.ID]}
	}
	return facets
}

// ListCategories returns active top-level categories by display order
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return c.TopLevelCategories(), nil
}

// ListBrands returns active brands by display order
func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.ActiveByOrder(c.Brands), nil
}

// GetCategory resolves a category page, optionally narrowed to one brand
func (s *CatalogService) GetCategory(ctx context.Context, slug, brandID string) (*CategoryView, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	category, ok := catalog.Resolve(c.Categories, slug)
	if !ok {
		return nil, ErrCategoryNotFound
	}

	products := catalog.FilterByScope(c.Products, c.Categories, catalog.Scope{
		CategoryID: category.ID,
		BrandID:    brandID,
	})

	return &CategoryView{
		Category:        category,
		Subcategories:   c.SubcategoriesOf(category.ID),
		ProductsByBrand: byBrand(c, products),
		AvailableBrands: availableBrands(c, products),
		Total:           len(products),
	}, nil
}

// GetSubcategory resolves a subcategory page
func (s *CatalogService) GetSubcategory(ctx context.Context, slug string) (*SubcategoryView, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sub, ok := catalog.Resolve(c.Subcategories, slug)
	if !ok {
		return nil, ErrSubcategoryNotFound
	}

	products := catalog.FilterByScope(c.Products, c.Categories, catalog.Scope{SubcategoryID: sub.ID})
	view := &SubcategoryView{
		Subcategory:     sub,
		ProductsByBrand: byBrand(c, products),
		Total:           len(products),
	}
	if parent, ok := c.Category(sub.ParentID); ok {
		view.Parent = &parent
	}
	return view, nil
}

// GetBrand resolves a brand page, optionally narrowed to one category
func (s *CatalogService) GetBrand(ctx context.Context, slug, categoryID string) (*BrandView, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	brand, ok := catalog.Resolve(c.Brands, slug)
	if !ok {
		return nil, ErrBrandNotFound
	}

	products := catalog.FilterByScope(c.Products, c.Categories, catalog.Scope{
		BrandID:    brand.ID,
		CategoryID: categoryID,
	})

	groups := catalog.GroupBy(products, func(p models.Product) string { return p.CategoryID })
	sections := make([]CategorySection, 0, len(groups))
	for _, g := range groups {
		// products pointing at an inactive category are still listed under a stub
		category, ok := c.Category(g.Key)
		if !ok {
			category = models.Category{ID: g.Key}
		}
		sections = append(sections, CategorySection{Category: category, Products: toCards(g.Items)})
	}

	return &BrandView{
		Brand:              brand,
		ProductsByCategory: sections,
		Total:              len(products),
	}, nil
}

func byBrand(c *catalog.Catalog, products []models.Product) []BrandSection {
	groups := catalog.GroupBy(products, func(p models.Product) string { return p.BrandID })
	sections := make([]BrandSection, 0, len(groups))
	for _, g := range groups {
		brand, ok := c.Brand(g.Key)
		if !ok {
			brand = models.Brand{ID: g.Key, Name: g.Items[0].Brand}
		}
		sections = append(sections, BrandSection{Brand: brand, Products: toCards(g.Items)})
	}
	return sections
}

// availableBrands lists active brands, in brand table order, that appear in products
func availableBrands(c *catalog.Catalog, products []models.Product) []models.Brand {
	present := make(map[string]bool)
	for _, p := range products {
		present[p.BrandID] = true
	}
	brands := make([]models.Brand, 0)
	for _, b := range catalog.Active(c.Brands) {
		if present[b.ID] {
			brands = append(brands, b)
		}
	}
	return brands
}

// GetProduct resolves a product page with its brand, categories and related products
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*ProductDetail, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	product, ok := catalog.Resolve(c.Products, slug)
	if !ok {
		return nil, ErrProductNotFound
	}

	detail := &ProductDetail{
		ProductCard: toCard(product),
		Related:     toCards(catalog.Related(c.Products, product, RelatedProductsLimit)),
	}
	if b, ok := c.Brand(product.BrandID); ok {
		detail.BrandInfo = &b
	}
	if cat, ok := c.Category(product.CategoryID); ok {
		detail.Category = &cat
	}
	if product.SubcategoryID != "" {
		if sub, ok := c.Category(product.SubcategoryID); ok {
			detail.Subcategory = &sub
		}
	}
	return detail, nil
}

// Search runs a free-text search; no matches is an empty result, not an error
func (s *CatalogService) Search(ctx context.Context, query string) (*SearchResult, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	products := catalog.SearchText(c.Products, query)
	return &SearchResult{
		Query:    query,
		Products: toCards(products),
		Total:    len(products),
	}, nil
}

// Home assembles the landing page
func (s *CatalogService) Home(ctx context.Context) (*HomeView, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	featuredBrands := make([]models.Brand, 0)
	for _, b := range catalog.ActiveByOrder(c.Brands) {
		if b.Featured {
			featuredBrands = append(featuredBrands, b)
		}
	}

	testimonials := make([]models.Testimonial, 0)
	for _, t := range catalog.Active(c.Testimonials) {
		if t.Featured {
			testimonials = append(testimonials, t)
		}
	}

	return &HomeView{
		Banners:        catalog.ActiveByOrder(c.Banners),
		FeaturedBrands: featuredBrands,
		Categories:     c.TopLevelCategories(),
		Featured:       toCards(catalog.Featured(c.Products, HomeFeaturedLimit)),
		NewArrivals:    toCards(catalog.NewArrivals(c.Products, HomeNewArrivalsLimit)),
		Testimonials:   catalog.Limit(testimonials, HomeTestimonialsLimit),
	}, nil
}
