// Package source provides toast feeds for the demo playground.
package source

import (
	"context"
	"time"

	"github.com/vitachoice/toastui/internal/toast"
)

// Notifier is the slice of the toast manager a feed drives.
type Notifier interface {
	Show(payload any, kind toast.Kind, duration time.Duration) string
	ShowPersistent(payload any, kind toast.Kind) string
	Dismiss(id string)
	ClearAll()
}

// Source streams toasts into a Notifier.
type Source interface {
	// Name returns the source identifier (e.g., "script", "stdin").
	Name() string

	// Run feeds the notifier until the feed ends or ctx is canceled.
	Run(ctx context.Context, n Notifier) error
}

// NewSource creates a Source for the named feed.
// An empty name selects the built-in script.
func NewSource(name string) (Source, error) {
	switch name {
	case "", "script":
		return NewScriptSource(), nil
	case "stdin":
		return NewStdinSource(), nil
	default:
		return nil, &FeedError{
			Source:  name,
			Message: "unknown source",
		}
	}
}

// FeedError represents a source-related error.
type FeedError struct {
	Source  string
	Message string
	Err     error
}

func (e *FeedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FeedError) Unwrap() error {
	return e.Err
}
