// Package stats computes summary statistics (count, sum, min, max, mean) over a
// numeric projection of records.
//
// Summaries over an empty input are never silently defaulted: Summarize and
// Accumulator.Summary return an EMPTY_AGGREGATION *errors.AppError together with
// the zero Summary, and callers decide how to present the absence.
package stats
