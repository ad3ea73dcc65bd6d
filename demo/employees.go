package demo

import (
	"context"

	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/observability"
	"github.com/kbukum/tabkit/order"
	"github.com/kbukum/tabkit/pipeline"
)

// EmployeeReport is the employee table in four orders.
type EmployeeReport struct {
	Original      []dataset.Employee `json:"original" yaml:"original"`
	ByName        []dataset.Employee `json:"by_name" yaml:"by_name"`
	BySalaryDesc  []dataset.Employee `json:"by_salary_desc" yaml:"by_salary_desc"`
	ByAgeThenName []dataset.Employee `json:"by_age_then_name" yaml:"by_age_then_name"`
}

// Employees sorts the table three ways. The input is never modified.
func Employees(ctx context.Context, records []dataset.Employee) (*EmployeeReport, error) {
	sorted := func(stage string, cmp order.Comparator[dataset.Employee]) ([]dataset.Employee, error) {
		return pipeline.Collect(ctx, observability.Stage(pipeline.Sort(pipeline.FromSlice(records), cmp), stage))
	}

	byName, err := sorted("sort_by_name", EmployeeByName)
	if err != nil {
		return nil, err
	}
	bySalary, err := sorted("sort_by_salary_desc", EmployeeBySalary.Reversed())
	if err != nil {
		return nil, err
	}
	byAge, err := sorted("sort_by_age_then_name", EmployeeByAge.Then(EmployeeByName))
	if err != nil {
		return nil, err
	}

	original := make([]dataset.Employee, len(records))
	copy(original, records)

	return &EmployeeReport{
		Original:      original,
		ByName:        byName,
		BySalaryDesc:  bySalary,
		ByAgeThenName: byAge,
	}, nil
}
