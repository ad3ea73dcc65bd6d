package pipeline

import (
	"context"
	"sync"
)

// Buffer adds a buffered channel between pipeline stages.
// This decouples the production rate from the consumption rate.
func Buffer[T any](p *Pipeline[T], size int) *Pipeline[T] {
	if size <= 0 {
		size = 1
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			source := p.create(ctx)
			bufCtx, cancel := context.WithCancel(ctx)
			ch := make(chan result[T], size)

			go func() {
				defer close(ch)
				for {
					val, ok, err := source.Next(bufCtx)
					if err != nil {
						select {
						case ch <- result[T]{err: err}:
						case <-bufCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case ch <- result[T]{val: val, ok: true}:
					case <-bufCtx.Done():
						return
					}
				}
			}()

			return &channelIter[T]{
				ch: ch,
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}

// sequenced tags a value with its position in the upstream.
type sequenced[T any] struct {
	seq int
	val T
	err error
}

// Parallel applies fn to each value concurrently with up to n workers.
// Output order matches input order; results that finish early are held until
// every value before them has been yielded. The first error stops the stage.
func Parallel[I, O any](p *Pipeline[I], n int, fn func(context.Context, I) (O, error)) *Pipeline[O] {
	if n <= 0 {
		n = 1
	}
	return &Pipeline[O]{
		create: func(ctx context.Context) Iterator[O] {
			source := p.create(ctx)
			workerCtx, cancel := context.WithCancel(ctx)
			in := make(chan sequenced[I], n)
			out := make(chan sequenced[O], n)

			var wg sync.WaitGroup

			// Producer: pull from source into input channel
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer close(in)
				for seq := 0; ; seq++ {
					val, ok, err := source.Next(workerCtx)
					if err != nil {
						select {
						case out <- sequenced[O]{seq: -1, err: err}:
						case <-workerCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case in <- sequenced[I]{seq: seq, val: val}:
					case <-workerCtx.Done():
						return
					}
				}
			}()

			// Workers: process input and write to output
			for range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for item := range in {
						o, err := fn(workerCtx, item.val)
						select {
						case out <- sequenced[O]{seq: item.seq, val: o, err: err}:
						case <-workerCtx.Done():
							return
						}
						if err != nil {
							cancel()
							return
						}
					}
				}()
			}

			go func() {
				wg.Wait()
				close(out)
			}()

			return &orderedIter[O]{
				ch:      out,
				pending: make(map[int]O),
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}

// orderedIter re-sequences results arriving out of order.
type orderedIter[T any] struct {
	ch      <-chan sequenced[T]
	pending map[int]T
	next    int
	closer  func() error
}

func (it *orderedIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	for {
		if val, ok := it.pending[it.next]; ok {
			delete(it.pending, it.next)
			it.next++
			return val, true, nil
		}
		select {
		case r, open := <-it.ch:
			if !open {
				return zero, false, nil
			}
			if r.err != nil {
				return zero, false, r.err
			}
			it.pending[r.seq] = r.val
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

func (it *orderedIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}
