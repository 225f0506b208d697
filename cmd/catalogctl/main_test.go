package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeSlugs(t *testing.T, out string) []string {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	slugs := make([]string, len(products))
	for i, p := range products {
		slugs[i] = p.Slug
	}
	return slugs
}

func TestProductsCmd(t *testing.T) {
	out, err := execute(t, "products", "--json", "--sort", "price-asc", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"sg-optipro-batting-gloves", "sg-test-cricket-ball-red"}, decodeSlugs(t, out))

	out, err = execute(t, "products", "--json", "--brand", "mrf", "--brand", "ss", "--sort", "price-desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"mrf-genius-grand-edition", "ss-ton-reserve-edition"}, decodeSlugs(t, out))

	out, err = execute(t, "products", "--json", "--max", "0")
	require.NoError(t, err)
	assert.Empty(t, decodeSlugs(t, out), "an explicit zero max excludes every priced product")
}

func TestProductsCmd_Table(t *testing.T) {
	out, err := execute(t, "products", "--subcategory", "1-3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SLUG")
	assert.Contains(t, lines[1], "sg-test-cricket-ball-red")
	assert.Contains(t, lines[1], "2999")
	assert.Contains(t, lines[1], "9%")
}

func TestSearchCmd(t *testing.T) {
	out, err := execute(t, "search", "--json", "Willow")
	require.NoError(t, err)
	assert.Equal(t, []string{"sg-rsd-xtreme-english-willow", "ss-ton-reserve-edition"}, decodeSlugs(t, out))

	out, err = execute(t, "search", "curling")
	require.NoError(t, err)
	assert.Equal(t, "No products found.\n", out)
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "category", "cricket")
	require.NoError(t, err)

	var c models.Category
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "1", c.ID)

	_, err = execute(t, "resolve", "category", "nonexistent-slug")
	assert.EqualError(t, err, `category "nonexistent-slug" not found`)

	_, err = execute(t, "resolve", "warehouse", "x")
	assert.Error(t, err)
}

func TestFacetsCmd(t *testing.T) {
	out, err := execute(t, "facets", "--json", "--category", "1")
	require.NoError(t, err)

	var result struct {
		Brands      []catalog.BrandCount `json:"brands"`
		PriceBounds *catalog.PriceRange  `json:"priceBounds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []catalog.BrandCount{
		{BrandID: "sg", Count: 3},
		{BrandID: "mrf", Count: 1},
		{BrandID: "ss", Count: 1},
	}, result.Brands)
	require.NotNil(t, result.PriceBounds)
	assert.Equal(t, catalog.PriceRange{Min: 2199, Max: 22999}, *result.PriceBounds)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
brands:
  - { id: sg, name: SG, slug: sg, active: true }
categories:
  - { id: "1", name: Cricket, slug: cricket, active: true, sportType: team }
products:
  - { id: p1, name: Bat, slug: bat, brandId: sg, categoryId: "1", mrp: 100, sku: B-1, active: true }
`), 0o644))

	out, err := execute(t, "validate", "-f", good)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog OK")
	assert.Contains(t, out, "1 active")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
products:
  - { id: p1, name: Bat, slug: bat, brandId: ghost, categoryId: "1", mrp: 100, sku: B-1, active: true }
`), 0o644))

	_, err = execute(t, "validate", "-f", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}
