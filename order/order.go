package order

import "cmp"

// Comparator orders two values of type T.
type Comparator[T any] func(a, b T) int

// Compare calls the comparator. A nil Comparator reports every pair as equal.
func (c Comparator[T]) Compare(a, b T) int {
	if c == nil {
		return 0
	}
	return c(a, b)
}

// Then returns a comparator that consults next only when c reports equality.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return Then(c, next)
}

// Reversed returns c with its result negated.
func (c Comparator[T]) Reversed() Comparator[T] {
	return Reverse(c)
}

// Less reports whether a sorts strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c.Compare(a, b) < 0
}

// By orders values ascending by the key returned from key.
// Floating-point NaN keys sort before all other keys and equal each other.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByFunc orders values by key using compare to order the keys.
func ByFunc[T, K any](key func(T) K, compare func(a, b K) int) Comparator[T] {
	return func(a, b T) int {
		return compare(key(a), key(b))
	}
}

// Natural orders values of an ordered type ascending.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Then composes primary and secondary lexicographically: the result is
// primary(a, b) unless that is zero, in which case it is secondary(a, b).
func Then[T any](primary, secondary Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := primary.Compare(a, b); r != 0 {
			return r
		}
		return secondary.Compare(a, b)
	}
}

// Compose chains comparators lexicographically, first to last.
// With no comparators every pair compares equal.
func Compose[T any](comparators ...Comparator[T]) Comparator[T] {
	cs := append([]Comparator[T](nil), comparators...)
	return func(a, b T) int {
		for _, c := range cs {
			if r := c.Compare(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Reverse inverts c, turning an ascending order into a descending one.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c.Compare(b, a)
	}
}
