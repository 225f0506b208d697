package catalog

// Group is one bucket produced by GroupBy
type Group[K comparable, T any] struct {
	Key   K   `json:"key"`
	Items []T `json:"items"`
}

// GroupBy partitions items by key. Groups appear in the order their key is
// first seen; items keep their input order within a group.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	groups := make([]Group[K, T], 0)
	index := make(map[K]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
