package export

import (
	"encoding/json"
	"io"

	"github.com/vitachoice/toastui/internal/toast"
)

// JSONFormatter formats toasts as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes toasts as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, toasts []toast.Toast) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toasts)
}

// FormatSingle writes a single toast as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, t *toast.Toast) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}
