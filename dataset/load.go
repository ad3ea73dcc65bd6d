package dataset

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/kbukum/tabkit/errors"
	"github.com/kbukum/tabkit/validation"
)

// Load reads a YAML or JSON list of records from path and validates each
// one. An empty path returns fallback unchanged.
func Load[T Record](path string, fallback []T) ([]T, error) {
	if path == "" {
		return fallback, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("dataset", path)
		}
		return nil, errors.Internal(err).WithDetail("path", path)
	}
	return Parse[T](data, path)
}

// Parse decodes and validates records. source names the data in errors.
func Parse[T Record](data []byte, source string) ([]T, error) {
	records := make([]T, 0)
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, errors.InvalidFormat(source, "YAML or JSON list of records").WithCause(err)
	}

	v := validation.New()
	for i, r := range records {
		r.Validate(v.At(fmt.Sprintf("%s[%d]", source, i)))
	}
	if appErr := v.Validate(); appErr != nil {
		return nil, appErr
	}
	return records, nil
}

// Set holds the three tables a demo run can use.
type Set struct {
	Employees []Employee
	Products  []Product
	Students  []Student
}

// Paths locate record files; empty entries keep the samples.
type Paths struct {
	Employees string
	Products  string
	Students  string
}

// LoadSet loads every table, falling back to the samples for unset paths.
func LoadSet(paths Paths) (*Set, error) {
	employees, err := Load(paths.Employees, Employees())
	if err != nil {
		return nil, err
	}
	products, err := Load(paths.Products, Products())
	if err != nil {
		return nil, err
	}
	students, err := Load(paths.Students, Students())
	if err != nil {
		return nil, err
	}
	return &Set{Employees: employees, Products: products, Students: students}, nil
}
