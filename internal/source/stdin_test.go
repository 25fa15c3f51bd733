package source

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitachoice/toastui/internal/toast"
)

func TestStdinSource_Name(t *testing.T) {
	assert.Equal(t, "stdin", NewStdinSource().Name())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantPayload any
		wantKind    toast.Kind
	}{
		{"kind prefix", "success: saved 3 rows", "saved 3 rows", toast.KindSuccess},
		{"kind prefix uppercase", "ERROR: disk full", "disk full", toast.KindError},
		{"kind prefix padded", "warning :  low battery ", "low battery", toast.KindWarning},
		{"bare text", "just a note", "just a note", toast.KindInfo},
		{"colon but not a kind", "note: remember the milk", "note: remember the milk", toast.KindInfo},
		{"url stays whole", "https://example.com/path", "https://example.com/path", toast.KindInfo},
		{"json object", `{"error": "bad input"}`, map[string]any{"error": "bad input"}, toast.KindError},
		{"json array", `["a", "b"]`, []any{"a", "b"}, toast.KindError},
		{"malformed json", `{not json`, `{not json`, toast.KindInfo},
		{"json after kind prefix stays text", `info: {"a": 1}`, `{"a": 1}`, toast.KindInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, kind := ParseLine(tt.line)
			assert.Equal(t, tt.wantPayload, payload)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestStdinSource_Run(t *testing.T) {
	input := strings.Join([]string{
		"success: saved 3 rows",
		"",
		"plain line",
		`{"response": {"status": 404, "config": {"url": "/x"}}, "message": "Not Found"}`,
		"   ",
		"error: disk full",
	}, "\n")

	rec := &recorder{}
	src := NewStdinSourceWithReader(strings.NewReader(input))

	err := src.Run(context.Background(), rec)
	require.NoError(t, err)
	require.Len(t, rec.shows, 4)

	assert.Equal(t, "saved 3 rows", rec.shows[0].payload)
	assert.Equal(t, toast.KindSuccess, rec.shows[0].kind)

	assert.Equal(t, "plain line", rec.shows[1].payload)
	assert.Equal(t, toast.KindInfo, rec.shows[1].kind)

	assert.Equal(t, toast.KindError, rec.shows[2].kind)
	payload, ok := rec.shows[2].payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Not Found", payload["message"])

	assert.Equal(t, "disk full", rec.shows[3].payload)
	assert.Equal(t, toast.KindError, rec.shows[3].kind)
}

func TestStdinSource_RunFeedsNormalization(t *testing.T) {
	input := `{"response": {"status": 404, "config": {"url": "/x"}}, "message": "Not Found"}`

	manager := toast.NewManager(toast.Options{})
	defer manager.Close()

	src := NewStdinSourceWithReader(strings.NewReader(input))
	require.NoError(t, src.Run(context.Background(), manager))

	active := manager.Active()
	require.Len(t, active, 1)
	assert.Contains(t, active[0].Message, "/x")
	assert.Contains(t, active[0].Message, "404")
	assert.Contains(t, active[0].Message, "Not Found")
	assert.Equal(t, toast.KindError, active[0].Kind)
}

func TestStdinSource_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	src := NewStdinSourceWithReader(strings.NewReader("info: never shown\n"))

	err := src.Run(ctx, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.shows)
}

func TestStdinSource_RunReadError(t *testing.T) {
	readErr := errors.New("pipe broke")
	src := NewStdinSourceWithReader(iotest.ErrReader(readErr))

	err := src.Run(context.Background(), &recorder{})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read stdin")
}
