// Package validation checks configuration and loaded records before they
// reach a pipeline.
//
// Struct tag validation (go-playground/validator) covers configuration
// structs; the collecting Validator covers per-record checks where each
// problem should be reported with the record it came from.
//
// # Struct Tag Validation
//
//	type OutputConfig struct {
//	    Format string `mapstructure:"format" validate:"oneof=text json yaml"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", e.Name).Min("age", e.Age, 0)
//	err := v.Validate()
package validation
