package demo

import (
	"context"

	"github.com/kbukum/tabkit/collection"
	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/observability"
	"github.com/kbukum/tabkit/pipeline"
	"github.com/kbukum/tabkit/stats"
)

// CategoryReport summarizes one product category.
type CategoryReport struct {
	Category      string           `json:"category" yaml:"category"`
	Summary       stats.Summary    `json:"summary" yaml:"summary"`
	MostExpensive *dataset.Product `json:"most_expensive,omitempty" yaml:"most_expensive,omitempty"`
}

// ProductReport is the per-category breakdown of the catalog.
type ProductReport struct {
	Total      int              `json:"total" yaml:"total"`
	Overall    *stats.Summary   `json:"overall,omitempty" yaml:"overall,omitempty"`
	Categories []CategoryReport `json:"categories" yaml:"categories"`
}

type category struct {
	name    string
	members []dataset.Product
}

// Products groups the catalog by category and summarizes each group with
// up to workers goroutines. Categories keep first-seen order. An empty
// catalog yields a report with no Overall summary and no categories.
func Products(ctx context.Context, records []dataset.Product, workers int) (*ProductReport, error) {
	groups, err := pipeline.GroupBy(ctx, observability.Stage(pipeline.FromSlice(records), "source"), productCategory)
	if err != nil {
		return nil, err
	}

	report := &ProductReport{Total: collection.TotalSize(groups)}
	overall, err := stats.Summarize(records, productPrice)
	switch {
	case err == nil:
		report.Overall = &overall
	case isEmpty(err):
		observability.RunFromContext(ctx).Note(err)
	default:
		return nil, err
	}

	entries := make([]category, 0, groups.Len())
	for name, members := range groups.All() {
		entries = append(entries, category{name: name, members: members})
	}

	summarized := pipeline.Parallel(pipeline.FromSlice(entries), workers, summarizeCategory)
	report.Categories, err = pipeline.Collect(ctx, observability.Stage(summarized, "summarize_categories"))
	if err != nil {
		return nil, err
	}
	return report, nil
}

func summarizeCategory(_ context.Context, c category) (CategoryReport, error) {
	summary, err := stats.Summarize(c.members, productPrice)
	if err != nil {
		return CategoryReport{}, err
	}
	out := CategoryReport{Category: c.name, Summary: summary}
	if top, ok := collection.MaxBy(c.members, ProductByPrice); ok {
		out.MostExpensive = &top
	}
	return out, nil
}
