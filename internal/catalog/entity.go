// Package catalog implements the storefront's read-only query engine.
//
// Every function here is pure: inputs are never mutated and "not found" is
// reported as a false ok value rather than an error.
package catalog

// Entity is anything addressable by id and slug that can be soft-deleted
type Entity interface {
	GetID() string
	GetSlug() string
	IsActive() bool
}

// Activatable is anything that can be soft-deleted
type Activatable interface {
	IsActive() bool
}

// Ranked carries a display rank
type Ranked interface {
	GetOrder() int
}

// Resolve returns the active entity whose slug matches exactly.
// The first active match wins; ok is false when nothing active matches.
func Resolve[T Entity](items []T, slug string) (T, bool) {
	for _, item := range items {
		if item.GetSlug() == slug && item.IsActive() {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindByID returns the active entity with the given id
func FindByID[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id && item.IsActive() {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Active returns the active items in input order
func Active[T Activatable](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.IsActive() {
			out = append(out, item)
		}
	}
	return out
}

// ActiveByOrder returns the active items sorted by display rank, ties in input order
func ActiveByOrder[T interface {
	Activatable
	Ranked
}](items []T) []T {
	return sortByOrder(Active(items))
}

// Limit truncates items to at most n elements; n <= 0 means no limit
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
