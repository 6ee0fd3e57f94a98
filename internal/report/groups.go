package report

// OrderedGroups buckets items by a string key while preserving the order in
// which keys were first seen. Output order of every report follows this
// first-seen order, never alphabetical order.
type OrderedGroups[T any] struct {
	keys   []string
	groups map[string][]T
}

// Add appends item to the bucket for key, creating it on first use.
func (g *OrderedGroups[T]) Add(key string, item T) {
	if g.groups == nil {
		g.groups = make(map[string][]T)
	}
	if _, ok := g.groups[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

// Keys returns the group keys in first-seen order.
func (g *OrderedGroups[T]) Keys() []string {
	return g.keys
}

// Get returns the items bucketed under key.
func (g *OrderedGroups[T]) Get(key string) []T {
	return g.groups[key]
}

// Len returns the number of distinct groups.
func (g *OrderedGroups[T]) Len() int {
	return len(g.keys)
}

// GroupBy buckets items using the given key function.
func GroupBy[T any](items []T, key func(T) string) *OrderedGroups[T] {
	groups := &OrderedGroups[T]{}
	for _, item := range items {
		groups.Add(key(item), item)
	}
	return groups
}
