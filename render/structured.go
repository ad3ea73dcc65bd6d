package render

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/kbukum/tabkit/demo"
	"github.com/kbukum/tabkit/errors"
)

// JSON renders reports as a single JSON document.
type JSON struct {
	// Indent is repeated per nesting level; empty writes compact JSON.
	Indent string
}

// Render implements Renderer.
func (j *JSON) Render(w io.Writer, report *demo.Report) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(report); err != nil {
		return errors.Internal(err).WithDetail("format", FormatJSON)
	}
	return nil
}

// YAML renders reports as a single YAML document.
type YAML struct{}

// Render implements Renderer.
func (y *YAML) Render(w io.Writer, report *demo.Report) error {
	out, err := yaml.MarshalWithOptions(report, yaml.IndentSequence(true))
	if err != nil {
		return errors.Internal(err).WithDetail("format", FormatYAML)
	}
	_, err = w.Write(out)
	return err
}
