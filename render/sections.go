package render

import (
	"fmt"

	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/demo"
)

func (tw *textWriter) employeeTable(title string, rows []dataset.Employee) {
	tw.line("--- %s ---", title)
	for _, e := range rows {
		tw.line("%s", tw.t.Employee(e))
	}
}

func (tw *textWriter) employees(r *demo.EmployeeReport) {
	tw.employeeTable("Original List", r.Original)
	tw.line("")
	tw.employeeTable("1. Sorted by Name", r.ByName)
	tw.line("")
	tw.employeeTable("2. Sorted by Salary (Highest First)", r.BySalaryDesc)
	tw.line("")
	tw.employeeTable("3. Sorted by Age then by Name", r.ByAgeThenName)
}

func (tw *textWriter) products(r *demo.ProductReport) {
	tw.line("--- Dataset Size: %d Products ---", r.Total)
	if r.Overall == nil {
		tw.line("No products to summarize.")
		return
	}

	tw.line("")
	tw.line("--- 1. Average Price and Count by Category ---")
	for _, c := range r.Categories {
		tw.line("Category: %s | Count: %d | Avg Price: %s | Range: %s - %s",
			c.Category, c.Summary.Count, tw.t.Money(c.Summary.Average()),
			tw.t.Money(c.Summary.Min), tw.t.Money(c.Summary.Max))
	}

	tw.line("")
	tw.line("--- 2. Most Expensive Product per Category ---")
	for _, c := range r.Categories {
		top := "none"
		if c.MostExpensive != nil {
			top = fmt.Sprintf("%s (%s)", c.MostExpensive.Name, tw.t.Money(c.MostExpensive.Price))
		}
		tw.line("Category: %s | Max Product: %s", c.Category, top)
	}
}

func (tw *textWriter) students(r *demo.StudentReport) {
	tw.line("--- All Students ---")
	for _, s := range r.All {
		tw.line("%s", Student(s))
	}

	tw.line("")
	tw.line("--- Results: Filtered (>%d%%), Sorted (Marks Descending), Names Collected ---", r.Threshold)
	if len(r.TopPerformers) == 0 {
		tw.line("No students met the criteria. Raise the bar higher.")
		return
	}
	for _, name := range r.TopPerformers {
		tw.line("-> %s", name)
	}
	if r.Marks != nil {
		tw.line("Average marks: %.2f (min %.0f, max %.0f)", r.Marks.Average(), r.Marks.Min, r.Marks.Max)
	}
	if r.Best != nil {
		tw.line("Best: %s", Student(*r.Best))
	}
}

// Employee formats one employee row as "Name | Age: n | Salary: $x".
func (t *Text) Employee(e dataset.Employee) string {
	return fmt.Sprintf("%-15s | Age: %-3d | Salary: %s", e.Name, e.Age, t.Money(e.Salary))
}

// Student formats one student as "Name (marks%) in Subject".
func Student(s dataset.Student) string {
	return fmt.Sprintf("%s (%d%%) in %s", s.Name, s.Marks, s.Subject)
}
