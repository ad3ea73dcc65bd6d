// Package order provides composable comparators for sorting records.
//
// A Comparator reports how two values relate: negative when a sorts before b,
// zero when they are equal for ordering purposes, positive otherwise. Ordering
// is never implicit; it is always built from key extractors:
//
//	byAgeThenName := order.By(func(e Employee) int { return e.Age }).
//	    Then(order.By(func(e Employee) string { return e.Name }))
//	bySalaryDesc := order.By(func(e Employee) float64 { return e.Salary }).Reversed()
//
// # Preconditions
//
// Comparators must be antisymmetric (c(a, b) == -c(b, a) in sign), transitive,
// and report zero for c(a, a). These properties are not checked at runtime.
// Sorting with a comparator that violates them yields an unspecified order;
// it does not panic or return an error.
package order
