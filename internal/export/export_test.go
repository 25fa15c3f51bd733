package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vitachoice/toastui/internal/toast"
)

func testToasts() []toast.Toast {
	now := time.Now()
	return []toast.Toast{
		{
			ID:         "01HQZX3A9GJ5M8Y2K4N6P7R9T1",
			Message:    "Payment failed",
			Kind:       toast.KindError,
			CreatedAt:  now.Add(-5 * time.Minute),
			Duration:   5 * time.Second,
			ExpiresAt:  now.Add(-5 * time.Minute).Add(5 * time.Second),
			StackCount: 1,
		},
		{
			ID:         "01HQZX3A9GJ5M8Y2K4N6P7R9T2",
			Message:    "Formula saved",
			Kind:       toast.KindSuccess,
			CreatedAt:  now.Add(-2 * time.Hour),
			StackCount: 1,
		},
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewJSONFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "Payment failed", decoded[0]["message"])
	assert.Equal(t, "error", decoded[0]["kind"])
	assert.Equal(t, "Formula saved", decoded[1]["message"])

	// Output is indented
	assert.Contains(t, buf.String(), "\n  ")
}

func TestJSONFormatter_FormatSingle(t *testing.T) {
	var buf bytes.Buffer

	toasts := testToasts()
	formatter := NewJSONFormatter(DefaultFormatterOptions())
	err := formatter.FormatSingle(&buf, &toasts[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Payment failed", decoded["message"])
}

func TestJSONFormatter_PersistentOmitsExpiry(t *testing.T) {
	var buf bytes.Buffer

	toasts := testToasts()
	formatter := NewJSONFormatter(DefaultFormatterOptions())
	err := formatter.FormatSingle(&buf, &toasts[1])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotContains(t, decoded, "expires_at")
	assert.NotContains(t, decoded, "duration")
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewYAMLFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "Payment failed", decoded[0]["message"])
	assert.Contains(t, buf.String(), "kind: error")
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewPlainFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "[1] [error] Payment failed")
	assert.Contains(t, lines[0], "ago")
	assert.Contains(t, lines[1], "[2] [success] Formula saved")
}

func TestPlainFormatter_NoIndexNoTime(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowIndex = false
	opts.ShowTime = false
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "[error] Payment failed", lines[0])
}

func TestPlainFormatter_MaxLen(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowIndex = false
	opts.ShowTime = false
	opts.MessageMaxLen = 10
	formatter := NewPlainFormatter(opts)

	toasts := []toast.Toast{{Message: "This message is far too long", Kind: toast.KindInfo}}
	require.NoError(t, formatter.Format(&buf, toasts))

	assert.Equal(t, "[info] This me...", strings.TrimSpace(buf.String()))
}

func TestPlainFormatter_CustomTemplate(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Index}}: {{.Message}} ({{.RelativeTime}})"
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1: Payment failed (5 minutes ago)", lines[0])
}

func TestPlainFormatter_DefaultConfigTemplate(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.CreatedAt | formatTime}} [{{.Kind}}] {{.Message}}"
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[error] Payment failed")
	// formatTime renders a full date prefix
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} `, lines[0])
}

func TestPlainFormatter_InvalidTemplateFallsBack(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Broken"
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, testToasts())
	require.NoError(t, err)

	// Falls back to the default line format
	assert.Contains(t, buf.String(), "[1] [error]")
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()

	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, opts))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("bogus", opts))
}

func TestFormatField(t *testing.T) {
	toasts := testToasts()
	tr := &toasts[0]

	tests := []struct {
		field    string
		expected string
	}{
		{"id", tr.ID},
		{"kind", "error"},
		{"message", "Payment failed"},
		{"count", "1"},
		{"unknown", "Payment failed"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatField(tr, tt.field))
		})
	}

	assert.NotEmpty(t, FormatField(tr, "created_at"))
	assert.NotEmpty(t, FormatField(tr, "expires_at"))

	// Persistent toasts have no expiry
	assert.Empty(t, FormatField(&toasts[1], "expires_at"))
}

func TestSanitizeMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		newlines bool
		expected string
	}{
		{"plain", "hello", 0, false, "hello"},
		{"newlines collapsed", "line one\nline two", 0, false, "line one line two"},
		{"carriage returns dropped", "a\r\nb", 0, false, "a b"},
		{"spaces collapsed", "a    b", 0, false, "a b"},
		{"trimmed", "  padded  ", 0, false, "padded"},
		{"truncated", "abcdefghij", 6, false, "abc..."},
		{"newlines kept", "a\nb", 0, true, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeMessage(tt.input, tt.maxLen, tt.newlines))
		})
	}
}
