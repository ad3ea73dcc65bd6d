package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/tabkit/errors"
	"github.com/kbukum/tabkit/logger"
	"github.com/kbukum/tabkit/pipeline"
)

// Stage wraps p so that each run of it is traced as a child span of the
// current Run, counted in tabkit.records and logged at debug level. The
// span starts when the pipeline is iterated and ends when it is exhausted,
// fails or is closed.
func Stage[T any](p *pipeline.Pipeline[T], name string) *pipeline.Pipeline[T] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[T] {
		run := RunFromContext(ctx)
		demo := ""
		if run != nil {
			demo = run.Demo
		}

		ctx, span := StartSpan(ctx, SpanPipelineStage, trace.WithAttributes(
			attribute.String(AttrStage, name),
			attribute.String(AttrDemo, demo),
		))
		start := time.Now()

		observed := pipeline.Observe(p, func(ctx context.Context, n int, err error) {
			endStage(ctx, run, span, name, n, time.Since(start), err)
		})
		return observed.Iter(ctx)
	})
}

func endStage(ctx context.Context, run *Run, span trace.Span, name string, n int, d time.Duration, err error) {
	span.SetAttributes(
		attribute.Int(AttrRecords, n),
		attribute.Int64(AttrDurationMs, d.Milliseconds()),
	)
	code := ""
	if err != nil {
		code = string(errors.Wrap(err).Code)
		recordError(span, err)
	}
	span.End()

	if run == nil {
		return
	}
	if run.Metrics != nil {
		run.Metrics.RecordStage(ctx, run.Demo, name, n, d, code)
	}
	fields := logger.MergeWithDuration(logger.StageFields(name, n), d)
	if err != nil {
		run.Log.WithError(err).Warn("stage failed", fields)
		return
	}
	run.Log.Debug("stage completed", fields)
}
