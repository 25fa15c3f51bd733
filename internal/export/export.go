// Package export provides output formatters for toasts.
package export

import (
	"io"

	"github.com/vitachoice/toastui/internal/toast"
)

// Formatter formats toasts for output.
type Formatter interface {
	// Format writes formatted toasts to the writer.
	Format(w io.Writer, toasts []toast.Toast) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatPlain FormatType = "plain"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template       string // Custom template for plain format
	ShowIndex      bool   // Show 1-based index prefix
	ShowTime       bool   // Show relative age
	MessageMaxLen  int    // Maximum message length (0 = unlimited)
	IncludeNewline bool   // Keep newlines in messages (default: replace with space)
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex:      true,
		ShowTime:       true,
		MessageMaxLen:  0,
		IncludeNewline: false,
	}
}
