package collection

// Groups maps a key to the records that share it.
type Groups[K comparable, T any] = Ordered[K, []T]

// GroupBy places every record into exactly one group keyed by key(record).
// Keys are compared with ==, iterate in first-seen order, and each group keeps
// the relative input order of its members. Empty input yields empty Groups.
func GroupBy[T any, K comparable](records []T, key func(T) K) *Groups[K, T] {
	g := NewOrdered[K, []T]()
	for _, r := range records {
		k := key(r)
		i, ok := g.index[k]
		if !ok {
			g.Set(k, []T{r})
			continue
		}
		g.vals[i] = append(g.vals[i], r)
	}
	return g
}

// GroupReduce partitions records by key and reduces each group to one value.
// Groups passed to reduce are never empty.
func GroupReduce[T any, K comparable, R any](records []T, key func(T) K, reduce func(K, []T) R) *Ordered[K, R] {
	return MapValues(GroupBy(records, key), reduce)
}

// TotalSize returns the number of records across all groups.
func TotalSize[K comparable, T any](g *Groups[K, T]) int {
	n := 0
	for _, members := range g.vals {
		n += len(members)
	}
	return n
}
