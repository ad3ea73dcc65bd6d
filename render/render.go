package render

import (
	"io"

	"github.com/kbukum/tabkit/demo"
	"github.com/kbukum/tabkit/errors"
)

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes a report to w.
type Renderer interface {
	Render(w io.Writer, report *demo.Report) error
}

// New returns the renderer for format. locale only affects text output.
func New(format, locale string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewText(locale)
	case FormatJSON:
		return &JSON{Indent: "  "}, nil
	case FormatYAML:
		return &YAML{}, nil
	default:
		return nil, errors.InvalidFormat("output.format", "text, json or yaml")
	}
}
