package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CatalogService is the read side the storefront handlers depend on
type CatalogService interface {
	ListProducts(ctx context.Context, q catalog.ProductQuery) (*service.ProductListing, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	GetCategory(ctx context.Context, slug, brandID string) (*service.CategoryView, error)
	GetSubcategory(ctx context.Context, slug string) (*service.SubcategoryView, error)
	GetBrand(ctx context.Context, slug, categoryID string) (*service.BrandView, error)
	GetProduct(ctx context.Context, slug string) (*service.ProductDetail, error)
	Search(ctx context.Context, query string) (*service.SearchResult, error)
	Home(ctx context.Context) (*service.HomeView, error)
	ListAlbums(ctx context.Context) ([]service.AlbumSummary, error)
	GetAlbum(ctx context.Context, slug string, mediaType models.MediaType) (*service.AlbumView, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, slug string) (*models.Job, error)
	GetPage(ctx context.Context, slug string) (*models.Page, error)
	GetStoreInfo(ctx context.Context) (*models.StoreInfo, error)
}

// CatalogHandler handles the storefront's read-only catalog endpoints
type CatalogHandler struct {
	service  CatalogService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Routes returns the router mounted under /api
func (h *CatalogHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/home", h.Home)
	r.Get("/search", h.Search)

	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)

	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{slug}", h.GetCategory)
	r.Get("/subcategories/{slug}", h.GetSubcategory)

	r.Get("/brands", h.ListBrands)
	r.Get("/brands/{slug}", h.GetBrand)

	r.Get("/gallery", h.ListAlbums)
	r.Get("/gallery/{slug}", h.GetAlbum)
	r.Get("/careers", h.ListJobs)
	r.Get("/careers/{slug}", h.GetJob)
	r.Get("/pages/{slug}", h.GetPage)
	r.Get("/store", h.GetStore)

	return r
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params, err := bindProductList(r.URL.Query())
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := h.validate.Struct(params); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	listing, err := h.service.ListProducts(r.Context(), params.query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, listing, h.logger)
}

// GetProduct handles GET /api/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, product, h.logger)
}

// Search handles GET /api/search?q=
// No matches is a 200 with an empty list.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := searchParams{Query: r.URL.Query().Get("q")}
	if err := h.validate.Struct(params); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	result, err := h.service.Search(r.Context(), params.Query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, result, h.logger)
}

// Home handles GET /api/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, home, h.logger)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// GetCategory handles GET /api/categories/{slug}?brand=
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "slug"), r.URL.Query().Get("brand"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.logger)
}

// GetSubcategory handles GET /api/subcategories/{slug}
func (h *CatalogHandler) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetSubcategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.logger)
}

// ListBrands handles GET /api/brands
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, brands, h.logger)
}

// GetBrand handles GET /api/brands/{slug}?category=
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetBrand(r.Context(), chi.URLParam(r, "slug"), r.URL.Query().Get("category"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.logger)
}

// handleError maps service errors onto status codes.
// Unknown slugs are 404; anything else is logged and reported as 500.
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrSubcategoryNotFound),
		errors.Is(err, service.ErrBrandNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrAlbumNotFound),
		errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrStoreInfoNotFound):
		h.logger.Info("not found", zap.String("path", r.URL.Path), zap.Error(err))
		WriteError(w, http.StatusNotFound, err.Error(), h.logger)
	case errors.Is(err, context.Canceled):
		h.logger.Debug("request canceled", zap.String("path", r.URL.Path))
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
