// Package collection provides eager, generic operations over in-memory record
// slices: filtering, projection, stable sorting, group-by and max/min selection.
//
// All functions are pure. They never modify the caller's slice (SortInPlace
// is the one documented exception) and never retain it after returning.
//
// # Grouping
//
// GroupBy partitions records into Groups, an insertion-ordered map. Keys
// iterate in the order they were first seen and members keep their input
// order, so output is deterministic for a given input:
//
//	byCategory := collection.GroupBy(products, func(p Product) string { return p.Category })
//	for category, items := range byCategory.All() {
//	    ...
//	}
package collection
