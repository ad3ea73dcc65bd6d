// Package errors provides unified error handling for tabkit.
// It implements a structured error type with machine-readable codes so callers
// can tell an empty aggregation apart from bad input or a cancelled pipeline.
package errors
