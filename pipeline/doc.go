// Package pipeline provides composable, pull-based record pipelines.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, ForEach or one of the aggregate terminals. Each stage pulls from the
// previous stage on demand.
//
// # Operators
//
// Synchronous (single-goroutine, order preserving):
//
//   - Filter: keep records matching a predicate
//   - Map: project each record
//   - FlatMap: project each record into several
//   - Tap: side-effect without altering the record
//   - Sort: stable sort by an order.Comparator (buffers its input)
//   - Reduce: fold all records into one value
//   - Concat: join pipelines sequentially
//   - Observe: report how many records a stage yielded once it finishes
//
// Concurrent (order preserving):
//
//   - Buffer: decouple producer and consumer with a buffered channel
//   - Parallel: Map with a worker pool; output keeps input order
//
// Terminals: Collect, Drain, ForEach, GroupBy, Summarize, MaxBy.
//
// # Usage
//
//	top := pipeline.FromSlice(students)
//	top = pipeline.Filter(top, func(s Student) bool { return s.Marks > 75 })
//	top = pipeline.Sort(top, order.By(Student.GetMarks).Reversed())
//	names, err := pipeline.Collect(ctx, pipeline.Map(top, func(_ context.Context, s Student) (string, error) {
//	    return s.Name, nil
//	}))
//
// Context cancellation surfaces as a CANCELLED *errors.AppError from the
// terminals.
package pipeline
