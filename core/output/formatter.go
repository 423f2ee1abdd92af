// Package output provides report formatting.
// This package produces human and machine-readable renderings of analysis
// results; it never computes anything itself.
package output

import (
	"io"

	"gridcalc/core/quantity"
	"gridcalc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable terminal rendering
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatMarkdown:
		return Format(name), nil
	}
	return "", errors.NotSupported("output format " + name)
}

// Row is one labeled value in a report.
type Row struct {
	// Label names the quantity
	Label string `json:"label"`

	// Value is the rendered value
	Value string `json:"value"`

	// Unit is the unit suffix, empty for dimensionless values
	Unit string `json:"unit,omitempty"`
}

// Num builds a row from a numeric value with fixed decimal places.
func Num(label string, v float64, places int32, unit string) Row {
	return Row{Label: label, Value: quantity.Format(v, places), Unit: unit}
}

// Str builds a row from a pre-rendered value.
func Str(label, value, unit string) Row {
	return Row{Label: label, Value: value, Unit: unit}
}

// Report is the result of one analysis over one subject.
type Report struct {
	// Analysis is the analysis name
	Analysis string `json:"analysis"`

	// Subject identifies what was analyzed (a block label in a study)
	Subject string `json:"subject,omitempty"`

	// Rows are the ordered result values
	Rows []Row `json:"rows"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the reports
	Render(w io.Writer, reports []Report) error
}

// NewFormatter returns the formatter for a format.
func NewFormatter(f Format, noColor bool) (Formatter, error) {
	switch f {
	case FormatText:
		return &textFormatter{noColor: noColor}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{}, nil
	}
	return nil, errors.NotSupported("output format " + string(f))
}
