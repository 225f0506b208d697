package handlers

import (
	"net/http"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
	"github.com/go-chi/chi/v5"
)

// ListAlbums handles GET /api/gallery
func (h *CatalogHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.service.ListAlbums(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, albums, h.logger)
}

// GetAlbum handles GET /api/gallery/{slug}?type=image|video
func (h *CatalogHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	params := albumParams{Type: r.URL.Query().Get("type")}
	if err := h.validate.Struct(params); err != nil {
		WriteError(w, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}

	album, err := h.service.GetAlbum(r.Context(), chi.URLParam(r, "slug"), models.MediaType(params.Type))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, album, h.logger)
}

// ListJobs handles GET /api/careers
func (h *CatalogHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListJobs(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs, h.logger)
}

// GetJob handles GET /api/careers/{slug}
func (h *CatalogHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetJob(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, job, h.logger)
}

// GetPage handles GET /api/pages/{slug}
func (h *CatalogHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, page, h.logger)
}

// GetStore handles GET /api/store
func (h *CatalogHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetStoreInfo(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, info, h.logger)
}
