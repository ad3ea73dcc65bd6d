package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kbukum/tabkit/collection"
	"github.com/kbukum/tabkit/errors"
)

const opSummarize = "summarize"

// Summary holds aggregate statistics for one group of values. A NaN among
// the values makes Sum, Min, Max and Mean NaN; Count still includes it.
type Summary struct {
	Count int     `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Mean  float64 `json:"average" yaml:"average"`
}

// Average returns the arithmetic mean of the summarized values.
func (s Summary) Average() float64 { return s.Mean }

// IsEmpty reports whether the summary covers no values.
func (s Summary) IsEmpty() bool { return s.Count == 0 }

// Summarize computes statistics over field(record) for every record.
// Empty input returns the zero Summary and an EMPTY_AGGREGATION error.
func Summarize[T any](records []T, field func(T) float64) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, errors.EmptyAggregation(opSummarize)
	}
	return summarizeValues(collection.Map(records, field)), nil
}

// SummarizeValues computes statistics over a plain slice of values.
func SummarizeValues(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.EmptyAggregation(opSummarize)
	}
	return summarizeValues(values), nil
}

// SummarizeGroups summarizes each group. Groups are never empty, so no
// per-group error is possible.
func SummarizeGroups[K comparable, T any](groups *collection.Groups[K, T], field func(T) float64) *collection.Ordered[K, Summary] {
	return collection.MapValues(groups, func(_ K, members []T) Summary {
		return summarizeValues(collection.Map(members, field))
	})
}

// SummarizeBy groups records by key and summarizes field within each group.
func SummarizeBy[T any, K comparable](records []T, key func(T) K, field func(T) float64) *collection.Ordered[K, Summary] {
	return SummarizeGroups(collection.GroupBy(records, key), field)
}

// summarizeValues requires len(values) > 0.
func summarizeValues(values []float64) Summary {
	s := Summary{
		Count: len(values),
		Sum:   floats.Sum(values),
		Mean:  stat.Mean(values, nil),
	}
	// floats.Min and floats.Max skip NaN; Accumulator does not.
	if floats.HasNaN(values) {
		s.Min, s.Max = math.NaN(), math.NaN()
	} else {
		s.Min, s.Max = floats.Min(values), floats.Max(values)
	}
	return s
}
