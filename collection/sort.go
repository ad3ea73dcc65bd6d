package collection

import (
	"slices"

	"github.com/kbukum/tabkit/order"
)

// Sort returns a stably sorted copy of records. Elements the comparator reports
// as equal keep their relative input order. records itself is not modified.
func Sort[T any](records []T, cmp order.Comparator[T]) []T {
	out := make([]T, len(records))
	copy(out, records)
	SortInPlace(out, cmp)
	return out
}

// SortInPlace stably sorts a caller-owned slice.
func SortInPlace[T any](records []T, cmp order.Comparator[T]) {
	slices.SortStableFunc(records, cmp.Compare)
}

// IsSorted reports whether every adjacent pair in records compares less than or equal.
func IsSorted[T any](records []T, cmp order.Comparator[T]) bool {
	return slices.IsSortedFunc(records, cmp.Compare)
}

// MaxBy returns the greatest record according to cmp. When several records
// share the maximum, the first one encountered is returned. The boolean is
// false, and the record the zero value, when records is empty.
func MaxBy[T any](records []T, cmp order.Comparator[T]) (T, bool) {
	var best T
	if len(records) == 0 {
		return best, false
	}
	best = records[0]
	for _, r := range records[1:] {
		if cmp.Compare(r, best) > 0 {
			best = r
		}
	}
	return best, true
}

// MinBy returns the least record according to cmp, first encountered on ties.
// The boolean is false when records is empty.
func MinBy[T any](records []T, cmp order.Comparator[T]) (T, bool) {
	var best T
	if len(records) == 0 {
		return best, false
	}
	best = records[0]
	for _, r := range records[1:] {
		if cmp.Compare(r, best) < 0 {
			best = r
		}
	}
	return best, true
}
