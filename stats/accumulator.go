package stats

import (
	"math"

	"github.com/kbukum/tabkit/errors"
)

// Accumulator builds a Summary one value at a time. The zero value is ready to
// use. Accumulators from disjoint partitions can be combined with Merge.
// NaN propagates the same way it does in Summarize.
type Accumulator struct {
	count int
	sum   float64
	min   float64
	max   float64
}

// Add folds v into the accumulator.
func (a *Accumulator) Add(v float64) {
	if a.count == 0 {
		a.min, a.max = v, v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	a.count++
	a.sum += v
}

// Merge folds every value seen by other into a.
func (a *Accumulator) Merge(other Accumulator) {
	if other.count == 0 {
		return
	}
	if a.count == 0 {
		*a = other
		return
	}
	a.count += other.count
	a.sum += other.sum
	a.min = math.Min(a.min, other.min)
	a.max = math.Max(a.max, other.max)
}

// Count returns the number of values added so far.
func (a Accumulator) Count() int { return a.count }

// Summary returns the statistics accumulated so far, or an EMPTY_AGGREGATION
// error when nothing was added.
func (a Accumulator) Summary() (Summary, error) {
	if a.count == 0 {
		return Summary{}, errors.EmptyAggregation(opSummarize)
	}
	return Summary{
		Count: a.count,
		Sum:   a.sum,
		Min:   a.min,
		Max:   a.max,
		Mean:  a.sum / float64(a.count),
	}, nil
}
