package toast

// DismissReason records why a toast left the active collection.
type DismissReason int

const (
	// ReasonExpired indicates the auto-dismiss timer fired.
	ReasonExpired DismissReason = iota + 1
	// ReasonDismissed indicates an explicit per-id dismissal.
	ReasonDismissed
	// ReasonCleared indicates removal by a bulk clear.
	ReasonCleared
	// ReasonShutdown indicates removal during manager teardown.
	ReasonShutdown
)

// String returns the string representation of the dismiss reason.
func (r DismissReason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonDismissed:
		return "dismissed"
	case ReasonCleared:
		return "cleared"
	case ReasonShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}
