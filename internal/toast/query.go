package toast

import (
	"sort"
	"strings"
)

// FilterByKind returns the toasts matching kind. An invalid kind returns
// the input unchanged.
func FilterByKind(toasts []Toast, kind Kind) []Toast {
	if !kind.Valid() {
		return toasts
	}

	result := make([]Toast, 0, len(toasts))
	for _, t := range toasts {
		if t.Kind == kind {
			result = append(result, t)
		}
	}
	return result
}

// Search returns the toasts whose message contains term,
// case-insensitively. An empty term returns the input unchanged.
func Search(toasts []Toast, term string) []Toast {
	if term == "" {
		return toasts
	}

	term = strings.ToLower(term)
	var result []Toast

	for _, t := range toasts {
		if strings.Contains(strings.ToLower(t.Message), term) {
			result = append(result, t)
		}
	}
	return result
}

// LookupByID finds a toast by id. Returns nil if not found.
func LookupByID(toasts []Toast, id string) *Toast {
	for i := range toasts {
		if toasts[i].ID == id {
			return &toasts[i]
		}
	}
	return nil
}

// SortNewestFirst sorts toasts in place by creation time, newest first.
// Ties keep their relative order so same-instant toasts stay stable.
func SortNewestFirst(toasts []Toast) {
	sort.SliceStable(toasts, func(i, j int) bool {
		return toasts[i].CreatedAt.After(toasts[j].CreatedAt)
	})
}
