// Package output provides output formatting interfaces.
// This is the presentation boundary: amounts are rounded to the currency
// minor unit here and nowhere else.
package output

import (
	"io"

	"agency-quote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, result *types.QuoteResult) error
}

// New returns the formatter for a format name, defaulting to CLI
func New(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{ShowDetails: true}
	}
}
