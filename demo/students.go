package demo

import (
	"context"

	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/errors"
	"github.com/kbukum/tabkit/observability"
	"github.com/kbukum/tabkit/pipeline"
	"github.com/kbukum/tabkit/stats"
)

// StudentReport lists the students above the threshold.
type StudentReport struct {
	Threshold     int               `json:"threshold" yaml:"threshold"`
	All           []dataset.Student `json:"all" yaml:"all"`
	TopPerformers []string          `json:"top_performers" yaml:"top_performers"`
	Marks         *stats.Summary    `json:"marks,omitempty" yaml:"marks,omitempty"`
	Best          *dataset.Student  `json:"best,omitempty" yaml:"best,omitempty"`
}

// Students keeps students with marks strictly above threshold, orders them
// by marks (highest first, ties in input order) and collects their names.
// When nobody passes, TopPerformers is empty and Marks and Best are nil.
func Students(ctx context.Context, records []dataset.Student, threshold int) (*StudentReport, error) {
	passed := pipeline.Filter(
		observability.Stage(pipeline.FromSlice(records), "source"),
		func(s dataset.Student) bool { return s.Marks > threshold },
	)
	ranked, err := pipeline.Collect(ctx, observability.Stage(
		pipeline.Sort(observability.Stage(passed, "filter"), StudentByMarks.Reversed()),
		"sort_by_marks_desc",
	))
	if err != nil {
		return nil, err
	}

	names, err := pipeline.Collect(ctx, pipeline.Project(pipeline.FromSlice(ranked), studentName))
	if err != nil {
		return nil, err
	}

	report := &StudentReport{
		Threshold:     threshold,
		All:           records,
		TopPerformers: names,
	}

	marks, err := stats.Summarize(ranked, studentMarks)
	switch {
	case err == nil:
		report.Marks = &marks
	case isEmpty(err):
		observability.RunFromContext(ctx).Note(err)
	default:
		return nil, err
	}

	best, ok, err := pipeline.MaxBy(ctx, pipeline.FromSlice(ranked), StudentByMarks)
	if err != nil {
		return nil, err
	}
	if ok {
		report.Best = &best
	}
	return report, nil
}

func isEmpty(err error) bool {
	return errors.IsEmptyAggregation(err)
}
