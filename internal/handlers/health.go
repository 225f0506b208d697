package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Version is the build version reported by the health endpoint
var Version = "dev"

// SnapshotVersioner reports the version of the catalog currently served
type SnapshotVersioner interface {
	Version() string
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	snapshots SnapshotVersioner
	logger    *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(snapshots SnapshotVersioner, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		snapshots: snapshots,
		logger:    logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Version        string    `json:"version"`
	CatalogVersion string    `json:"catalogVersion,omitempty"`
}

// ServeHTTP reports healthy once a catalog snapshot is loaded, 503 before that
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC(),
		Version:        Version,
		CatalogVersion: h.snapshots.Version(),
	}

	status := http.StatusOK
	if response.CatalogVersion == "" {
		response.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	WriteJSON(w, status, response, h.logger)
}
