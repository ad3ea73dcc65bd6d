package demo

import (
	"context"
	"slices"

	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/errors"
	"github.com/kbukum/tabkit/logger"
	"github.com/kbukum/tabkit/observability"
)

// Scenario names.
const (
	All           = "all"
	EmployeesDemo = "employees"
	ProductsDemo  = "products"
	StudentsDemo  = "students"
)

// Names lists the scenarios in the order "all" runs them.
var Names = []string{EmployeesDemo, ProductsDemo, StudentsDemo}

// Report collects the results of the scenarios that ran. Scenarios that
// were not selected stay nil.
type Report struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Employees *EmployeeReport `json:"employees,omitempty" yaml:"employees,omitempty"`
	Products  *ProductReport  `json:"products,omitempty" yaml:"products,omitempty"`
	Students  *StudentReport  `json:"students,omitempty" yaml:"students,omitempty"`
}

// Runner runs scenarios over one dataset.Set. A nil Data uses the
// built-in samples.
type Runner struct {
	Data     *dataset.Set
	MinMarks int
	Workers  int
	Metrics  *observability.Metrics
	Log      *logger.Logger
}

// Resolve expands "all" and rejects unknown scenario names. Duplicates are
// dropped and the canonical order is kept.
func Resolve(names ...string) ([]string, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		switch {
		case n == All:
			for _, all := range Names {
				want[all] = true
			}
		case slices.Contains(Names, n):
			want[n] = true
		default:
			return nil, errors.NotFound("demo", n)
		}
	}
	if len(want) == 0 {
		return nil, errors.InvalidInput("demo", "no scenario selected")
	}

	out := make([]string, 0, len(want))
	for _, n := range Names {
		if want[n] {
			out = append(out, n)
		}
	}
	return out, nil
}

// Run executes the named scenarios in canonical order and stops at the
// first failure.
func (r *Runner) Run(ctx context.Context, names ...string) (*Report, error) {
	selected, err := Resolve(names...)
	if err != nil {
		return nil, err
	}

	runID, _ := logger.RunIDFromContext(ctx)
	report := &Report{RunID: runID}
	for _, name := range selected {
		if err := r.runOne(ctx, name, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, name string, report *Report) (err error) {
	ctx, run := observability.StartRun(ctx, name, r.Metrics, r.Log)
	defer func() { run.End(err) }()

	data := r.data()
	switch name {
	case EmployeesDemo:
		report.Employees, err = Employees(ctx, data.Employees)
	case ProductsDemo:
		report.Products, err = Products(ctx, data.Products, r.Workers)
	case StudentsDemo:
		report.Students, err = Students(ctx, data.Students, r.MinMarks)
	}
	return err
}

func (r *Runner) data() *dataset.Set {
	if r.Data != nil {
		return r.Data
	}
	return &dataset.Set{
		Employees: dataset.Employees(),
		Products:  dataset.Products(),
		Students:  dataset.Students(),
	}
}
