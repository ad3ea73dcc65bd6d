package pipeline

import (
	"context"

	"github.com/kbukum/tabkit/collection"
	"github.com/kbukum/tabkit/order"
	"github.com/kbukum/tabkit/stats"
)

// GroupBy runs the pipeline and partitions its values by key.
// See collection.GroupBy for ordering guarantees.
func GroupBy[T any, K comparable](ctx context.Context, p *Pipeline[T], key func(T) K) (*collection.Groups[K, T], error) {
	values, err := Collect(ctx, p)
	if err != nil {
		return nil, err
	}
	return collection.GroupBy(values, key), nil
}

// Summarize runs the pipeline and summarizes field over its values. An empty
// pipeline yields an EMPTY_AGGREGATION error.
func Summarize[T any](ctx context.Context, p *Pipeline[T], field func(T) float64) (stats.Summary, error) {
	accs, err := Collect(ctx, Reduce(p, stats.Accumulator{}, func(acc stats.Accumulator, v T) stats.Accumulator {
		acc.Add(field(v))
		return acc
	}))
	if err != nil {
		return stats.Summary{}, err
	}
	return accs[0].Summary()
}

// MaxBy runs the pipeline and returns its greatest value according to cmp,
// the first encountered on ties. ok is false for an empty pipeline.
func MaxBy[T any](ctx context.Context, p *Pipeline[T], cmp order.Comparator[T]) (best T, ok bool, err error) {
	err = ForEach(ctx, p, func(_ context.Context, v T) error {
		if !ok || cmp.Compare(v, best) > 0 {
			best, ok = v, true
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return best, ok, nil
}
