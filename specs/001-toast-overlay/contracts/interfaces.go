// Package contracts defines the interfaces for toastui.
// This file serves as documentation and is not compiled.
// Actual implementations live in internal/ packages.
package contracts

import (
	"context"
	"io"
	"time"
)

// =============================================================================
// Model Types
// =============================================================================

// Kind classifies a toast and selects its default duration, icon, and
// accent color.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Toast represents a single displayed notification.
type Toast struct {
	ID        string        `json:"id"`   // ULID string
	Message   string        `json:"message"`
	Kind      Kind          `json:"kind"`
	CreatedAt time.Time     `json:"created_at"`
	Duration  time.Duration `json:"duration,omitempty"` // <=0 means persistent
	ExpiresAt time.Time     `json:"expires_at,omitzero"`

	// StackCount is how many duplicates collapsed into this toast.
	// 1 unless duplicate stacking is enabled.
	StackCount int `json:"stack_count,omitempty"`
}

// DismissReason records why a toast left the active collection.
type DismissReason int

const (
	ReasonExpired DismissReason = iota + 1
	ReasonDismissed
	ReasonCleared
	ReasonShutdown
)

// EventType indicates the type of collection change.
type EventType int

const (
	EventAdded EventType = iota
	EventRemoved
	EventStacked
)

// Event signals a change to the active toast collection.
type Event struct {
	Type   EventType
	Toast  Toast
	Reason DismissReason // Set for EventRemoved
}

// =============================================================================
// Manager Interface
// =============================================================================

// Manager owns the active toast collection.
// All methods are safe for concurrent use.
type Manager interface {
	// Show queues a toast. The payload is normalized into a message,
	// an invalid kind falls back to the default, and a non-positive
	// duration falls back to the kind's configured default.
	// Never panics, whatever the payload.
	Show(payload any, kind Kind, duration time.Duration) string

	// ShowPersistent queues a toast that stays until dismissed.
	ShowPersistent(payload any, kind Kind) string

	// Kind shorthands with per-kind default durations.
	Success(payload any) string
	Error(payload any) string
	Info(payload any) string
	Warning(payload any) string

	// Dismiss removes a toast by ID. Unknown IDs are a no-op.
	// The expiry timer is cancelled before removal.
	Dismiss(id string)

	// ClearAll removes every active toast.
	ClearAll()

	// Active returns the active toasts in insertion order.
	Active() []Toast

	// Len returns the number of active toasts.
	Len() int

	// Get returns a toast by ID, or nil.
	Get(id string) *Toast

	// SetDoNotDisturb suppresses display of new toasts when enabled.
	SetDoNotDisturb(enabled bool)

	// Subscribe returns a channel that receives collection events.
	// Caller must call Unsubscribe when done.
	Subscribe() <-chan Event

	// Unsubscribe removes a subscription.
	Unsubscribe(ch <-chan Event)

	// Close cancels all timers and closes subscriber channels.
	Close()
}

// =============================================================================
// Payload Normalization
// =============================================================================

// Normalizer turns an arbitrary payload into a display message.
// It is total: any input yields a non-empty string, never a panic.
// Resolution order: nil/empty fallback, plain string, error value,
// error/message/detail members, HTTP-response summary, request summary,
// string conversion, fallback.
type Normalizer func(payload any) string

// =============================================================================
// Source Interface
// =============================================================================

// Notifier is the subset of the manager a source feeds into.
type Notifier interface {
	Show(payload any, kind Kind, duration time.Duration) string
	ShowPersistent(payload any, kind Kind) string
	Dismiss(id string)
	ClearAll()
}

// Source streams toasts into a notifier.
type Source interface {
	// Name returns the source identifier (e.g., "script", "stdin").
	Name() string

	// Run feeds toasts until the stream ends or ctx is cancelled.
	// Blocks; callers run it in a goroutine.
	Run(ctx context.Context, n Notifier) error
}

// =============================================================================
// Output Formatter Interface
// =============================================================================

// Formatter renders a toast list for output.
type Formatter interface {
	// Format outputs toasts to the writer.
	// For single toast output, pass a slice with one element.
	Format(w io.Writer, toasts []Toast) error
}

// =============================================================================
// Clipboard Interface (TUI mode only)
// =============================================================================

// Clipboard handles copying text to system clipboard.
// Only used in TUI mode - shell pipelines handle clipboard elsewhere.
type Clipboard interface {
	// Copy copies text to the system clipboard.
	// Returns error if no clipboard tool is available.
	Copy(text string) error
}

// =============================================================================
// TUI Interface
// =============================================================================

// TUI represents the interactive playground.
type TUI interface {
	// Run starts the interactive session.
	// Blocks until user quits.
	Run(m Manager) error
}
