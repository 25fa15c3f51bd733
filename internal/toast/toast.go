// Package toast implements an in-process notification manager:
// transient, dismissible messages with per-kind auto-dismiss timers
// and best-effort normalization of arbitrary error payloads.
package toast

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Toast represents a single active notification.
type Toast struct {
	ID        string    `json:"id" yaml:"id"`
	Message   string    `json:"message" yaml:"message"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Duration is the auto-dismiss interval. Zero means the toast is
	// persistent and is removed only by explicit dismissal.
	Duration  time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
	ExpiresAt time.Time     `json:"expires_at,omitzero" yaml:"expires_at,omitempty"`

	// StackCount is the number of identical toasts folded into this one
	// when duplicate stacking is enabled. Always at least 1.
	StackCount int `json:"stack_count,omitempty" yaml:"stack_count,omitempty"`
}

// newToast builds a Toast from an already-normalized message.
// A non-positive duration produces a persistent toast.
func newToast(message string, kind Kind, duration time.Duration) Toast {
	now := time.Now()
	t := Toast{
		ID:         newID(),
		Message:    message,
		Kind:       kind,
		CreatedAt:  now,
		StackCount: 1,
	}
	if duration > 0 {
		t.Duration = duration
		t.ExpiresAt = now.Add(duration)
	}
	return t
}

// newID returns a ULID for a new toast. The millisecond timestamp prefix
// plus monotonic random suffix keeps ids unique even for calls within the
// same millisecond.
func newID() string {
	return ulid.Make().String()
}

// IsPersistent reports whether the toast lacks an auto-dismiss timer.
func (t *Toast) IsPersistent() bool {
	return t.Duration <= 0
}

// Remaining returns the time left before auto-dismissal, or zero for
// persistent or already-expired toasts.
func (t *Toast) Remaining(now time.Time) time.Duration {
	if t.IsPersistent() {
		return 0
	}
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Age returns how long the toast has been alive.
func (t *Toast) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// MessageTruncated returns the message collapsed to a single line and
// truncated to maxLen characters with "..." appended when cut.
func (t *Toast) MessageTruncated(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	msg := strings.Join(strings.Fields(t.Message), " ")

	if len(msg) <= maxLen {
		return msg
	}
	if maxLen <= 3 {
		return msg[:maxLen]
	}
	return msg[:maxLen-3] + "..."
}
