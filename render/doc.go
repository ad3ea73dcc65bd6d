// Package render writes a demo.Report as text, JSON or YAML.
//
// Text output follows the console layout of the original demos, with
// amounts grouped for the configured locale ($75,000.00 for en-US,
// $75.000,00 for de-DE). JSON and YAML emit the report structs as-is.
package render
