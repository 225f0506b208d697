// Package dataset loads catalog documents and turns them into validated,
// immutable catalog snapshots.
package dataset

import (
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// Document is the on-disk shape of a catalog file
type Document struct {
	Categories    []models.Category    `yaml:"categories"`
	Subcategories []models.Category    `yaml:"subcategories"`
	Brands        []models.Brand       `yaml:"brands"`
	Products      []models.Product     `yaml:"products"`
	Banners       []models.Banner      `yaml:"banners"`
	Testimonials  []models.Testimonial `yaml:"testimonials"`
	Albums        []models.Album       `yaml:"albums"`
	Media         []models.MediaItem   `yaml:"media"`
	Jobs          []models.Job         `yaml:"jobs"`
	Pages         []models.Page        `yaml:"pages"`
	Store         *models.StoreInfo    `yaml:"store"`
}

// Merge appends every collection of other onto d.
// A store section in other replaces the one in d.
func (d *Document) Merge(other *Document) {
	d.Categories = append(d.Categories, other.Categories...)
	d.Subcategories = append(d.Subcategories, other.Subcategories...)
	d.Brands = append(d.Brands, other.Brands...)
	d.Products = append(d.Products, other.Products...)
	d.Banners = append(d.Banners, other.Banners...)
	d.Testimonials = append(d.Testimonials, other.Testimonials...)
	d.Albums = append(d.Albums, other.Albums...)
	d.Media = append(d.Media, other.Media...)
	d.Jobs = append(d.Jobs, other.Jobs...)
	d.Pages = append(d.Pages, other.Pages...)
	if other.Store != nil {
		d.Store = other.Store
	}
}
