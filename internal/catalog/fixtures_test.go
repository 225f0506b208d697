package catalog

import (
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

func price(v int64) *int64 { return &v }

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Cricket", Slug: "cricket", Order: 1, Active: true, SportType: models.SportTeam},
		{ID: "2", Name: "Football", Slug: "football", Order: 2, Active: true, SportType: models.SportTeam},
		{ID: "3", Name: "Badminton", Slug: "badminton", Order: 3, Active: true, SportType: models.SportIndividual},
		{ID: "9", Name: "Fitness Equipment", Slug: "fitness", Order: 9, Active: true, SportType: models.SportFitness},
		{ID: "11", Name: "Archery", Slug: "archery", Order: 11, Active: false, SportType: models.SportIndividual},
	}
}

func sampleSubcategories() []models.Category {
	return []models.Category{
		{ID: "1-3", Name: "Cricket Balls", Slug: "cricket-balls", ParentID: "1", Order: 3, Active: true},
		{ID: "1-1", Name: "English Willow Bats", Slug: "english-willow-bats", ParentID: "1", Order: 1, Active: true},
		{ID: "1-2", Name: "Kashmir Willow Bats", Slug: "kashmir-willow-bats", ParentID: "1", Order: 2, Active: false},
	}
}

func sampleBrands() []models.Brand {
	return []models.Brand{
		{ID: "sg", Name: "SG", Slug: "sg", Featured: true, Active: true, Order: 1},
		{ID: "mrf", Name: "MRF", Slug: "mrf", Featured: true, Active: true, Order: 2},
		{ID: "yonex", Name: "Yonex", Slug: "yonex", Active: true, Order: 10},
		{ID: "old", Name: "Old Co", Slug: "old-co", Active: false, Order: 3},
	}
}

// productA, productB and productC are the three-product scenario used across tests
var (
	productA = models.Product{
		ID: "p1", Name: "SG RSD Xtreme English Willow Cricket Bat", Slug: "sg-rsd-xtreme",
		Brand: "SG", BrandID: "sg", CategoryID: "1", SubcategoryID: "1-1",
		MRP: 16999, OfflinePrice: price(15499), SKU: "SG-BAT-EW-001",
		Description: "Premium Grade 1 English Willow cricket bat.",
		Featured:    true, Active: true, InStock: true,
	}
	productB = models.Product{
		ID: "p2", Name: "MRF Genius Grand Edition Cricket Bat", Slug: "mrf-genius-grand-edition",
		Brand: "MRF", BrandID: "mrf", CategoryID: "1", SubcategoryID: "1-1",
		MRP: 24999, OfflinePrice: price(22999), SKU: "MRF-BAT-EW-002",
		Description: "The legendary MRF Genius bat.",
		Featured:    true, NewArrival: true, Active: true, InStock: true,
	}
	productC = models.Product{
		ID: "p4", Name: "SG Test Cricket Leather Ball (Red) - Pack of 6", Slug: "sg-test-cricket-ball-red",
		Brand: "SG", BrandID: "sg", CategoryID: "1", SubcategoryID: "1-3",
		MRP: 3299, OfflinePrice: price(2999), SKU: "SG-BALL-001",
		Description: "Professional grade leather cricket ball.",
		Active:      true, InStock: true,
	}
)

func sampleProducts() []models.Product {
	return []models.Product{
		productA,
		productB,
		productC,
		{
			ID: "p6", Name: "Yonex Astrox 99 Badminton Racket", Slug: "yonex-astrox-99",
			Brand: "Yonex", BrandID: "yonex", CategoryID: "3",
			MRP: 12999, SKU: "YNX-RKT-099",
			Description: "Head-heavy racket for steep smashes.",
			NewArrival:  true, Active: true, InStock: true,
		},
		{
			ID: "p7", Name: "SG Club Cricket Bat", Slug: "sg-club-cricket-bat",
			Brand: "SG", BrandID: "sg", CategoryID: "1", SubcategoryID: "1-2",
			MRP: 2499, SKU: "SG-BAT-KW-010",
			Description: "Discontinued Kashmir willow bat.",
			Featured:    true, Active: false,
		},
		{
			ID: "p8", Name: "adidas Training Dumbbell 5kg", Slug: "adidas-dumbbell-5kg",
			Brand: "Adidas", BrandID: "adidas", CategoryID: "9",
			MRP: 1999, OfflinePrice: price(1999), SKU: "ADI-FIT-005",
			Description: "Rubber coated dumbbell.",
			Active:      true, InStock: false,
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
