package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToast_IsPersistent(t *testing.T) {
	timed := newToast("x", KindInfo, time.Second)
	assert.False(t, timed.IsPersistent())

	pinned := newToast("x", KindInfo, 0)
	assert.True(t, pinned.IsPersistent())
	assert.True(t, pinned.ExpiresAt.IsZero())
}

func TestToast_Remaining(t *testing.T) {
	toast := newToast("x", KindInfo, time.Second)

	remaining := toast.Remaining(toast.CreatedAt)
	assert.Equal(t, time.Second, remaining)

	remaining = toast.Remaining(toast.CreatedAt.Add(600 * time.Millisecond))
	assert.Equal(t, 400*time.Millisecond, remaining)

	// Past expiry clamps to zero
	remaining = toast.Remaining(toast.CreatedAt.Add(2 * time.Second))
	assert.Equal(t, time.Duration(0), remaining)

	pinned := newToast("x", KindInfo, 0)
	assert.Equal(t, time.Duration(0), pinned.Remaining(time.Now()))
}

func TestToast_MessageTruncated(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		maxLen   int
		expected string
	}{
		{"short message unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"newlines collapsed", "line one\nline two", 20, "line one line two"},
		{"whitespace collapsed", "a   b\t\tc", 10, "a b c"},
		{"zero max", "hello", 0, ""},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toast := Toast{Message: tt.message}
			assert.Equal(t, tt.expected, toast.MessageTruncated(tt.maxLen))
		})
	}
}

func TestNewID(t *testing.T) {
	a := newID()
	b := newID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
