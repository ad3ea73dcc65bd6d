package collection

import "iter"

// Ordered is a map that remembers the order in which keys were first set.
// The zero value is not usable; create one with NewOrdered.
type Ordered[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

// NewOrdered creates an empty Ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{index: make(map[K]int)}
}

// Set stores v under k. Overwriting a key keeps its original position.
func (o *Ordered[K, V]) Set(k K, v V) {
	if i, ok := o.index[k]; ok {
		o.vals[i] = v
		return
	}
	o.index[k] = len(o.keys)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
}

// Get returns the value stored under k.
func (o *Ordered[K, V]) Get(k K) (V, bool) {
	i, ok := o.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return o.vals[i], true
}

// Len returns the number of keys.
func (o *Ordered[K, V]) Len() int { return len(o.keys) }

// Keys returns the keys in first-seen order. The slice is a copy.
func (o *Ordered[K, V]) Keys() []K {
	out := make([]K, len(o.keys))
	copy(out, o.keys)
	return out
}

// All iterates over key/value pairs in first-seen key order.
func (o *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}

// ToMap copies the entries into a plain map, dropping the key order.
func (o *Ordered[K, V]) ToMap() map[K]V {
	m := make(map[K]V, len(o.keys))
	for i, k := range o.keys {
		m[k] = o.vals[i]
	}
	return m
}

// MapValues builds a new Ordered with the same key order and each value
// replaced by fn(key, value).
func MapValues[K comparable, V, R any](o *Ordered[K, V], fn func(K, V) R) *Ordered[K, R] {
	out := &Ordered[K, R]{
		keys:  make([]K, len(o.keys)),
		vals:  make([]R, len(o.vals)),
		index: make(map[K]int, len(o.keys)),
	}
	copy(out.keys, o.keys)
	for i, k := range o.keys {
		out.vals[i] = fn(k, o.vals[i])
		out.index[k] = i
	}
	return out
}
