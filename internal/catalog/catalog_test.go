package catalog

import (
	"testing"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		Version:       "test",
		Categories:    sampleCategories(),
		Subcategories: sampleSubcategories(),
		Brands:        sampleBrands(),
		Products:      sampleProducts(),
		Media: []models.MediaItem{
			{ID: "g2", AlbumID: "album1", Type: models.MediaImage, Order: 2},
			{ID: "g1", AlbumID: "album1", Type: models.MediaImage, Order: 1},
			{ID: "v1", AlbumID: "album1", Type: models.MediaVideo, Order: 3},
			{ID: "g3", AlbumID: "album2", Type: models.MediaImage, Order: 1},
		},
	}
}

func TestCatalog_Category(t *testing.T) {
	c := sampleCatalog()

	top, ok := c.Category("1")
	require.True(t, ok)
	assert.Equal(t, "Cricket", top.Name)

	sub, ok := c.Category("1-3")
	require.True(t, ok)
	assert.True(t, sub.IsSubcategory())

	_, ok = c.Category("1-2")
	assert.False(t, ok, "inactive subcategory")
}

func TestCatalog_SubcategoriesOf(t *testing.T) {
	subs := sampleCatalog().SubcategoriesOf("1")

	require.Len(t, subs, 2)
	assert.Equal(t, "english-willow-bats", subs[0].Slug)
	assert.Equal(t, "cricket-balls", subs[1].Slug)
}

func TestCatalog_TopLevelCategories(t *testing.T) {
	top := sampleCatalog().TopLevelCategories()

	slugs := make([]string, len(top))
	for i, c := range top {
		slugs[i] = c.Slug
	}
	assert.Equal(t, []string{"cricket", "football", "badminton", "fitness"}, slugs)
}

func TestCatalog_AllCategories(t *testing.T) {
	c := sampleCatalog()
	assert.Len(t, c.AllCategories(), len(c.Categories)+len(c.Subcategories))
}

func TestCatalog_MediaOf(t *testing.T) {
	c := sampleCatalog()

	all := c.MediaOf("album1", "")
	require.Len(t, all, 3)
	assert.Equal(t, []string{"g1", "g2", "v1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	videos := c.MediaOf("album1", models.MediaVideo)
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].ID)

	assert.Empty(t, c.MediaOf("missing", ""))
}

func TestCatalog_Query(t *testing.T) {
	got := sampleCatalog().Query(ProductQuery{Scope: Scope{SubcategoryID: "1-1"}, Sort: SortName})

	assert.Equal(t, []string{"p2", "p1"}, ids(got))
}
