package pipeline

import (
	"context"

	"github.com/kbukum/tabkit/collection"
	"github.com/kbukum/tabkit/order"
)

// Sort yields the upstream values stably sorted by cmp. It must pull the whole
// upstream before yielding its first value.
func Sort[T any](p *Pipeline[T], cmp order.Comparator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &sortIter[T]{source: p.create(ctx), cmp: cmp}
		},
	}
}

type sortIter[T any] struct {
	source Iterator[T]
	cmp    order.Comparator[T]
	sorted *sliceIter[T]
}

func (it *sortIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.sorted == nil {
		var buf []T
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				var zero T
				return zero, false, err
			}
			if !ok {
				break
			}
			buf = append(buf, val)
		}
		collection.SortInPlace(buf, it.cmp)
		it.sorted = &sliceIter[T]{items: buf}
	}
	return it.sorted.Next(ctx)
}

func (it *sortIter[T]) Close() error { return it.source.Close() }
