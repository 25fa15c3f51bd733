package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vitachoice/toastui/internal/toast"
)

// YAMLFormatter formats toasts as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes toasts as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, toasts []toast.Toast) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(toasts)
}

// FormatSingle writes a single toast as YAML.
func (f *YAMLFormatter) FormatSingle(w io.Writer, t *toast.Toast) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(t)
}
