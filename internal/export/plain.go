package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vitachoice/toastui/internal/toast"
)

// PlainFormatter formats toasts as plain text, one per line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes toasts as plain text.
func (f *PlainFormatter) Format(w io.Writer, toasts []toast.Toast) error {
	for i := range toasts {
		if err := f.formatToast(w, i+1, &toasts[i]); err != nil {
			return err
		}
	}
	return nil
}

// formatToast formats a single toast line.
func (f *PlainFormatter) formatToast(w io.Writer, index int, t *toast.Toast) error {
	// Use custom template if available
	if f.template != nil {
		var buf strings.Builder
		data := templateData{
			Index:        index,
			Toast:        t,
			RelativeTime: humanize.Time(t.CreatedAt),
		}
		if err := f.template.Execute(&buf, data); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(buf.String(), "\n"))
		return err
	}

	// Default format: [index] [kind] message (age)
	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}

	sb.WriteString(fmt.Sprintf("[%s] ", t.Kind))
	sb.WriteString(sanitizeMessage(t.Message, f.opts.MessageMaxLen, f.opts.IncludeNewline))

	if f.opts.ShowTime {
		sb.WriteString(fmt.Sprintf(" (%s)", humanize.Time(t.CreatedAt)))
	}

	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// templateData provides data for custom templates.
type templateData struct {
	Index int
	*toast.Toast
	RelativeTime string
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"reltime": func(t time.Time) string {
			return humanize.Time(t)
		},
		"truncate": func(s string, maxLen int) string {
			if maxLen <= 0 || len(s) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return s[:maxLen]
			}
			return s[:maxLen-3] + "..."
		},
		"upper": strings.ToUpper,
	}
}

// FormatField outputs a specific field from a toast.
func FormatField(t *toast.Toast, field string) string {
	switch strings.ToLower(field) {
	case "id":
		return t.ID
	case "kind":
		return string(t.Kind)
	case "message":
		return t.Message
	case "created", "created_at":
		return t.CreatedAt.Format(time.RFC3339)
	case "expires", "expires_at":
		if t.ExpiresAt.IsZero() {
			return ""
		}
		return t.ExpiresAt.Format(time.RFC3339)
	case "count", "stack_count":
		return fmt.Sprintf("%d", t.StackCount)
	default:
		return t.Message
	}
}

// sanitizeMessage cleans up message text for single-line display.
func sanitizeMessage(message string, maxLen int, includeNewline bool) string {
	// Replace newlines with spaces unless explicitly included
	if !includeNewline {
		message = strings.ReplaceAll(message, "\n", " ")
		message = strings.ReplaceAll(message, "\r", "")
	}

	// Collapse multiple spaces
	for strings.Contains(message, "  ") {
		message = strings.ReplaceAll(message, "  ", " ")
	}

	message = strings.TrimSpace(message)

	// Truncate if needed
	if maxLen > 0 && len(message) > maxLen {
		if maxLen <= 3 {
			return message[:maxLen]
		}
		return message[:maxLen-3] + "..."
	}

	return message
}
