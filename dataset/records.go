package dataset

import (
	"github.com/kbukum/tabkit/validation"
)

// Employee is a row of the employee table.
type Employee struct {
	Name   string  `yaml:"name" json:"name"`
	Age    int     `yaml:"age" json:"age"`
	Salary float64 `yaml:"salary" json:"salary"`
}

// Validate reports invalid fields to v.
func (e Employee) Validate(v *validation.Validator) {
	v.Required("name", e.Name).
		Range("age", e.Age, 0, 150).
		NonNegative("salary", e.Salary)
}

// Product is a row of the product catalog.
type Product struct {
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Price    float64 `yaml:"price" json:"price"`
}

// Validate reports invalid fields to v.
func (p Product) Validate(v *validation.Validator) {
	v.Required("name", p.Name).
		Required("category", p.Category).
		NonNegative("price", p.Price)
}

// Student is a row of the exam results table.
type Student struct {
	Name    string `yaml:"name" json:"name"`
	Marks   int    `yaml:"marks" json:"marks"`
	Subject string `yaml:"subject" json:"subject"`
}

// Validate reports invalid fields to v.
func (s Student) Validate(v *validation.Validator) {
	v.Required("name", s.Name).
		Range("marks", s.Marks, 0, 100)
}

// Record is implemented by every row type a file can be loaded into.
type Record interface {
	Employee | Product | Student
	Validate(v *validation.Validator)
}
