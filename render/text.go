package render

import (
	"bufio"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kbukum/tabkit/demo"
	"github.com/kbukum/tabkit/errors"
)

// Text renders reports as human-readable console sections.
type Text struct {
	printer *message.Printer
}

// NewText returns a Text renderer for a BCP 47 locale such as "en-US".
// An empty locale means en-US.
func NewText(locale string) (*Text, error) {
	tag := language.AmericanEnglish
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, errors.InvalidFormat("output.locale", "BCP 47 language tag").WithCause(err)
		}
	}
	return &Text{printer: message.NewPrinter(tag)}, nil
}

// Money formats an amount with two decimals and locale grouping.
func (t *Text) Money(v float64) string {
	return "$" + t.printer.Sprintf("%.2f", v)
}

// Render writes every scenario present in report, separated by blank lines.
func (t *Text) Render(w io.Writer, report *demo.Report) error {
	bw := bufio.NewWriter(w)
	tw := &textWriter{w: bw, t: t}

	sections := 0
	section := func(render func(*textWriter)) {
		if sections > 0 {
			tw.line("")
		}
		sections++
		render(tw)
	}

	if report.Employees != nil {
		section(func(tw *textWriter) { tw.employees(report.Employees) })
	}
	if report.Products != nil {
		section(func(tw *textWriter) { tw.products(report.Products) })
	}
	if report.Students != nil {
		section(func(tw *textWriter) { tw.students(report.Students) })
	}

	if tw.err != nil {
		return tw.err
	}
	return bw.Flush()
}

// textWriter keeps the first write error so section code stays linear.
type textWriter struct {
	w   *bufio.Writer
	t   *Text
	err error
}

func (tw *textWriter) line(format string, args ...any) {
	if tw.err != nil {
		return
	}
	if _, err := tw.t.printer.Fprintf(tw.w, format+"\n", args...); err != nil {
		tw.err = err
	}
}
