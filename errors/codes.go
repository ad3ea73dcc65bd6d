package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Aggregation errors
const (
	// ErrCodeEmptyAggregation indicates an aggregate was requested over no records.
	ErrCodeEmptyAggregation ErrorCode = "EMPTY_AGGREGATION"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeNotFound indicates a named resource (dataset, demo) does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Execution errors
const (
	// ErrCodeCancelled indicates the pipeline stopped because its context ended.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var knownCodes = map[ErrorCode]bool{
	ErrCodeEmptyAggregation: true,
	ErrCodeInvalidInput:     true,
	ErrCodeMissingField:     true,
	ErrCodeInvalidFormat:    true,
	ErrCodeNotFound:         true,
	ErrCodeCancelled:        true,
	ErrCodeInternal:         true,
}

// IsKnownCode returns true if code is one of the codes defined in this package.
func IsKnownCode(code ErrorCode) bool {
	return knownCodes[code]
}
