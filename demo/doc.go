// Package demo runs the three tabkit scenarios over a dataset.Set and
// returns their results as plain structs for the render package.
//
//   - employees: the table in input order, then sorted by name, by salary
//     (highest first) and by age with name breaking ties.
//   - products: per-category count, average, min and max price plus the
//     most expensive product, categories in first-seen order.
//   - students: names of students above a marks threshold, highest marks
//     first.
//
// Each scenario runs inside an observability.Run, and its pipeline stages
// are traced through observability.Stage.
package demo
