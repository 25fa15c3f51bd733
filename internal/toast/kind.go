package toast

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the presentational category of a toast. It has no effect on
// lifecycle beyond selecting the default auto-dismiss duration.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// KindDefault is used when a caller does not specify a kind.
const KindDefault = KindInfo

// Default auto-dismiss durations per kind. Errors linger longest so the
// user has time to read them; successes clear quickly.
const (
	DefaultErrorDuration   = 5000 * time.Millisecond
	DefaultSuccessDuration = 2000 * time.Millisecond
	DefaultToastDuration   = 3000 * time.Millisecond
)

// Kinds lists all valid kinds in display order.
var Kinds = []Kind{KindSuccess, KindError, KindInfo, KindWarning}

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	}
	return false
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// DefaultDuration returns the built-in auto-dismiss duration for the kind.
func (k Kind) DefaultDuration() time.Duration {
	switch k {
	case KindError:
		return DefaultErrorDuration
	case KindSuccess:
		return DefaultSuccessDuration
	default:
		return DefaultToastDuration
	}
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("invalid kind: %s (use success, error, info, or warning)", s)
	}
	return k, nil
}
