package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/tabkit/errors"
	"github.com/kbukum/tabkit/logger"
)

// Run tracks one demo execution: its span, its stage metrics and the
// logger every stage inside it writes to.
type Run struct {
	Demo      string
	RunID     string
	StartTime time.Time
	Metrics   *Metrics
	Log       *logger.Logger

	span trace.Span
}

type runKey struct{}

// StartRun starts the demo span and returns a context carrying the Run.
// A nil metrics disables metric recording; a nil log uses the global logger.
func StartRun(ctx context.Context, demo string, metrics *Metrics, log *logger.Logger) (context.Context, *Run) {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	runID, _ := logger.RunIDFromContext(ctx)

	ctx, span := StartSpan(ctx, SpanDemoRun, trace.WithAttributes(
		attribute.String(AttrDemo, demo),
		attribute.String(AttrRunID, runID),
	))

	run := &Run{
		Demo:      demo,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
		Log:       log.WithContext(ctx).WithFields(logger.Fields(logger.FieldDemo, demo)),
		span:      span,
	}
	run.Log.Debug("demo started")
	return context.WithValue(ctx, runKey{}, run), run
}

// RunFromContext returns the Run stored by StartRun, or nil.
func RunFromContext(ctx context.Context) *Run {
	if run, ok := ctx.Value(runKey{}).(*Run); ok {
		return run
	}
	return nil
}

// End ends the demo span. An empty aggregation is a result, not a failure,
// so it is recorded as an event and the span stays ok.
func (r *Run) End(err error) {
	duration := r.Duration()
	status := StatusOK

	switch {
	case err == nil:
	case errors.IsEmptyAggregation(err):
		r.noteEmpty(err)
	default:
		status = StatusError
		recordError(r.span, err)
	}

	r.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	r.span.End()

	fields := logger.DurationFields("demo", duration)
	if status == StatusError {
		r.Log.WithError(err).Error("demo failed", fields)
		return
	}
	r.Log.Info("demo completed", fields)
}

// Note records an empty aggregation that a demo turned into an empty result.
// Any other error is ignored; return it so End records it. Note is a no-op
// on a nil Run.
func (r *Run) Note(err error) {
	if r == nil || !errors.IsEmptyAggregation(err) {
		return
	}
	r.noteEmpty(err)
	r.Log.Debug("empty aggregation", logger.Fields("reason", err.Error()))
}

func (r *Run) noteEmpty(err error) {
	r.span.AddEvent(EventEmptyAggregation, trace.WithAttributes(
		attribute.String(AttrErrorMessage, err.Error()),
	))
}

// Duration returns the elapsed time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}
