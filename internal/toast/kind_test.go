package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"success", KindSuccess},
		{"error", KindError},
		{"info", KindInfo},
		{"warning", KindWarning},
		{"ERROR", KindError},
		{"  Warning  ", KindWarning},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseKind("critical")
		assert.Error(t, err)

		_, err = ParseKind("")
		assert.Error(t, err)
	})
}

func TestKind_DefaultDuration(t *testing.T) {
	assert.Equal(t, 5000*time.Millisecond, KindError.DefaultDuration())
	assert.Equal(t, 2000*time.Millisecond, KindSuccess.DefaultDuration())
	assert.Equal(t, 3000*time.Millisecond, KindInfo.DefaultDuration())
	assert.Equal(t, 3000*time.Millisecond, KindWarning.DefaultDuration())
}

func TestKind_Valid(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("critical").Valid())
}
