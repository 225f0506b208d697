package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/dataset"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/repository"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	doc, err := dataset.Seed()
	require.NoError(t, err)
	c, err := dataset.Build(doc, time.Now())
	require.NoError(t, err)

	svc := service.NewCatalogService(repository.NewInMemoryCatalogRepository(c))
	return NewCatalogHandler(svc, zap.NewNop()).Routes()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func cardIDs(cards []service.ProductCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestListProducts(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"default featured first", "/products", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"price low alias", "/products?sort=price-low", []string{"p5", "p4", "p1", "p3", "p2"}},
		{"name sort", "/products?sort=name", []string{"p2", "p5", "p1", "p4", "p3"}},
		{"brand list", "/products?brand=mrf,ss", []string{"p2", "p3"}},
		{"repeated brand", "/products?brand=mrf&brand=ss", []string{"p2", "p3"}},
		{"price range", "/products?min=3000&max=17000", []string{"p1"}},
		{"inverted range", "/products?min=5000&max=1000", []string{}},
		{"negative min", "/products?min=-1&max=50000", []string{}},
		{"open upper bound", "/products?min=20000", []string{"p2"}},
		{"sport type", "/products?type=team", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"search inside listing", "/products?q=gloves", []string{"p5"}},
		{"blank search is ignored", "/products?q=%20%20&subcategory=1-3", []string{"p4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, tt.target)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			listing := decode[service.ProductListing](t, w)
			assert.Equal(t, tt.wantIDs, cardIDs(listing.Products))
			assert.Equal(t, len(tt.wantIDs), listing.Total)
		})
	}
}

func TestListProducts_InvalidParams(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"unknown sort", "/products?sort=popular", "sort must be one of: featured price-asc price-desc name price-low price-high"},
		{"non numeric max", "/products?max=cheap", "max must be an integer"},
		{"unknown sport type", "/products?type=water", "type must be one of: team individual fitness indoor apparel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestGetProduct(t *testing.T) {
	r := setupRouter(t)

	t.Run("found", func(t *testing.T) {
		w := get(t, r, "/products/mrf-genius-grand-edition")
		require.Equal(t, http.StatusOK, w.Code)

		detail := decode[service.ProductDetail](t, w)
		assert.Equal(t, "p2", detail.ID)
		assert.Equal(t, int64(22999), detail.EffectivePrice)
		assert.Equal(t, 8, detail.DiscountPercent)
		require.NotNil(t, detail.BrandInfo)
		assert.Equal(t, "mrf", detail.BrandInfo.ID)
		assert.Equal(t, []string{"p1", "p3"}, cardIDs(detail.Related))
	})

	t.Run("not found", func(t *testing.T) {
		w := get(t, r, "/products/nonexistent-slug")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "product not found", decode[ErrorResponse](t, w).Error)
	})
}

func TestSearch(t *testing.T) {
	r := setupRouter(t)

	w := get(t, r, "/search?q=ball")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"p4"}, cardIDs(decode[service.SearchResult](t, w).Products))

	t.Run("no matches is an empty list", func(t *testing.T) {
		w := get(t, r, "/search?q=surfboard")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"query":"surfboard","products":[],"total":0}`, w.Body.String())
	})
}

func TestCategoryRoutes(t *testing.T) {
	r := setupRouter(t)

	w := get(t, r, "/categories")
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[[]models.Category](t, w)
	require.Len(t, categories, 10)
	assert.Equal(t, "cricket", categories[0].Slug)

	w = get(t, r, "/categories/cricket?brand=sg")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[service.CategoryView](t, w)
	assert.Equal(t, 3, view.Total)
	require.Len(t, view.ProductsByBrand, 1)

	w = get(t, r, "/subcategories/cricket-balls")
	require.Equal(t, http.StatusOK, w.Code)
	sub := decode[service.SubcategoryView](t, w)
	assert.Equal(t, 1, sub.Total)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/categories/curling").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/subcategories/curling-stones").Code)
}

func TestBrandRoutes(t *testing.T) {
	r := setupRouter(t)

	w := get(t, r, "/brands")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Brand](t, w), 10)

	w = get(t, r, "/brands/sg?category=1")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[service.BrandView](t, w)
	assert.Equal(t, 3, view.Total)

	w = get(t, r, "/brands/acme")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "brand not found", decode[ErrorResponse](t, w).Error)
}

func TestHome(t *testing.T) {
	r := setupRouter(t)

	w := get(t, r, "/home")
	require.Equal(t, http.StatusOK, w.Code)

	home := decode[service.HomeView](t, w)
	assert.Len(t, home.Banners, 2)
	assert.Equal(t, []string{"p1", "p2", "p3"}, cardIDs(home.Featured))
	assert.Equal(t, []string{"p2"}, cardIDs(home.NewArrivals))
}

type failingService struct {
	CatalogService
	err error
}

func (s failingService) Home(ctx context.Context) (*service.HomeView, error) {
	return nil, s.err
}

func TestHandleError_Internal(t *testing.T) {
	r := NewCatalogHandler(failingService{err: errors.New("disk on fire")}, zap.NewNop()).Routes()

	w := get(t, r, "/home")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode[ErrorResponse](t, w).Error)

	r = NewCatalogHandler(failingService{err: repository.ErrNoSnapshot}, zap.NewNop()).Routes()
	assert.Equal(t, http.StatusInternalServerError, get(t, r, "/home").Code)
}
