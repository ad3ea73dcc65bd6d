package demo

import (
	"github.com/kbukum/tabkit/dataset"
	"github.com/kbukum/tabkit/order"
)

// Comparators used by the scenarios.
var (
	EmployeeByName   = order.By(func(e dataset.Employee) string { return e.Name })
	EmployeeByAge    = order.By(func(e dataset.Employee) int { return e.Age })
	EmployeeBySalary = order.By(func(e dataset.Employee) float64 { return e.Salary })

	ProductByPrice = order.By(func(p dataset.Product) float64 { return p.Price })

	StudentByMarks = order.By(func(s dataset.Student) int { return s.Marks })
)

func productCategory(p dataset.Product) string { return p.Category }
func productPrice(p dataset.Product) float64   { return p.Price }
func studentName(s dataset.Student) string     { return s.Name }
func studentMarks(s dataset.Student) float64   { return float64(s.Marks) }
