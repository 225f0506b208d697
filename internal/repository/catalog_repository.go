package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
)

var (
	ErrNoSnapshot = errors.New("catalog snapshot not loaded")
)

// CatalogRepository defines read access to the current catalog snapshot
type CatalogRepository interface {
	Snapshot(ctx context.Context) (*catalog.Catalog, error)
}

// InMemoryCatalogRepository implements CatalogRepository with an atomically
// swapped snapshot. Readers never block; a reload publishes a whole new snapshot.
type InMemoryCatalogRepository struct {
	current atomic.Pointer[catalog.Catalog]
}

// NewInMemoryCatalogRepository creates a repository, optionally seeded with a snapshot
func NewInMemoryCatalogRepository(initial *catalog.Catalog) *InMemoryCatalogRepository {
	r := &InMemoryCatalogRepository{}
	if initial != nil {
		r.current.Store(initial)
	}
	return r
}

// Snapshot returns the snapshot current at call time
func (r *InMemoryCatalogRepository) Snapshot(ctx context.Context) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := r.current.Load()
	if c == nil {
		return nil, ErrNoSnapshot
	}
	return c, nil
}

// Replace publishes a new snapshot
func (r *InMemoryCatalogRepository) Replace(c *catalog.Catalog) {
	r.current.Store(c)
}

// Version returns the current snapshot version, or "" before the first load
func (r *InMemoryCatalogRepository) Version() string {
	if c := r.current.Load(); c != nil {
		return c.Version
	}
	return ""
}
