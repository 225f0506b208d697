package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"go.uber.org/zap"
)

// Reloader rebuilds the catalog from its sources and publishes it
type Reloader interface {
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// AdminHandler serves operator endpoints behind API key auth
type AdminHandler struct {
	reloader Reloader
	logger   *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reloader Reloader, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		logger:   logger,
	}
}

// ReloadResponse describes the snapshot published by a reload
type ReloadResponse struct {
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loadedAt"`
	Products int       `json:"products"`
}

// Reload handles POST /api/admin/reload.
// A failed reload leaves the current snapshot in place and returns 422.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	c, err := h.reloader.Reload(r.Context())
	if err != nil {
		h.logger.Warn("catalog reload rejected", zap.Error(err))
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}

	h.logger.Info("catalog reloaded",
		zap.String("version", c.Version),
		zap.Int("products", len(c.Products)),
	)
	WriteJSON(w, http.StatusOK, ReloadResponse{
		Version:  c.Version,
		LoadedAt: c.LoadedAt,
		Products: len(c.Products),
	}, h.logger)
}
