package toast

import (
	"log/slog"
	"sync"
	"time"
)

// EventType indicates the type of collection change.
type EventType int

const (
	// EventAdded indicates a toast was appended to the collection.
	EventAdded EventType = iota
	// EventRemoved indicates a toast left the collection.
	EventRemoved
	// EventStacked indicates a duplicate was folded into an existing toast.
	EventStacked
)

// Event signals a change to the active collection.
type Event struct {
	Type  EventType
	Toast Toast
	// Reason is set for EventRemoved.
	Reason DismissReason
}

// Options configures a Manager.
type Options struct {
	// Durations overrides the built-in per-kind auto-dismiss defaults.
	// Entries with invalid kinds or non-positive durations are ignored.
	Durations map[Kind]time.Duration

	// StackDuplicates folds a show of an identical kind and message into
	// the existing toast (bumping its stack count and restarting its
	// timer) instead of appending. Off by default: every show appends.
	StackDuplicates bool

	// Logger receives lifecycle logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Manager owns the active toast collection. It normalizes payloads,
// assigns ids, schedules auto-dismiss timers, and publishes change events
// for the view layer. The collection preserves insertion order, oldest
// first. All methods are safe for concurrent use, and none fails
// observably: dismissing an unknown id and clearing an empty collection
// are no-ops.
type Manager struct {
	mu     sync.RWMutex
	toasts []Toast
	index  map[string]int         // toast id -> slice index
	timers map[string]*time.Timer // pending auto-dismiss timers by id

	durations map[Kind]time.Duration
	stack     bool
	dnd       bool

	subscribers []chan Event
	closed      bool

	logger *slog.Logger
}

// NewManager creates a Manager.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		toasts:      make([]Toast, 0),
		index:       make(map[string]int),
		timers:      make(map[string]*time.Timer),
		durations:   make(map[Kind]time.Duration, len(opts.Durations)),
		stack:       opts.StackDuplicates,
		subscribers: make([]chan Event, 0),
		logger:      logger,
	}
	for k, d := range opts.Durations {
		if k.Valid() && d > 0 {
			m.durations[k] = d
		}
	}
	return m
}

// Show normalizes payload, appends a toast, and schedules auto-dismissal.
// An empty or invalid kind falls back to info; a non-positive duration
// selects the per-kind default, so a toast from Show always expires.
// Returns the generated id.
func (m *Manager) Show(payload any, kind Kind, duration time.Duration) string {
	if !kind.Valid() {
		kind = KindDefault
	}
	if duration <= 0 {
		duration = m.durationFor(kind)
	}
	return m.add(Normalize(payload), kind, duration)
}

// ShowPersistent is Show without a timer: the toast stays until
// explicitly dismissed. Returns the generated id for later dismissal.
func (m *Manager) ShowPersistent(payload any, kind Kind) string {
	if !kind.Valid() {
		kind = KindDefault
	}
	return m.add(Normalize(payload), kind, 0)
}

// Success shows a success toast with the default duration.
func (m *Manager) Success(payload any) string {
	return m.Show(payload, KindSuccess, 0)
}

// Error shows an error toast with the default duration.
func (m *Manager) Error(payload any) string {
	return m.Show(payload, KindError, 0)
}

// Info shows an info toast with the default duration.
func (m *Manager) Info(payload any) string {
	return m.Show(payload, KindInfo, 0)
}

// Warning shows a warning toast with the default duration.
func (m *Manager) Warning(payload any) string {
	return m.Show(payload, KindWarning, 0)
}

// add inserts a toast with an already-normalized message. A non-positive
// duration means persistent.
func (m *Manager) add(message string, kind Kind, duration time.Duration) string {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return ""
	}

	if m.dnd && kind != KindError {
		m.mu.Unlock()
		m.logger.Debug("toast suppressed by do-not-disturb", "kind", kind)
		return ""
	}

	if m.stack {
		if idx, ok := m.findDuplicateLocked(message, kind); ok {
			t := &m.toasts[idx]
			t.StackCount++
			if !t.IsPersistent() {
				t.ExpiresAt = time.Now().Add(t.Duration)
				if timer, ok := m.timers[t.ID]; ok {
					timer.Reset(t.Duration)
				}
			}
			stacked := *t
			m.notifyLocked(Event{Type: EventStacked, Toast: stacked})
			m.mu.Unlock()

			m.logger.Debug("toast stacked",
				"id", stacked.ID,
				"kind", kind,
				"stack_count", stacked.StackCount,
			)
			return stacked.ID
		}
	}

	t := newToast(message, kind, duration)
	m.index[t.ID] = len(m.toasts)
	m.toasts = append(m.toasts, t)

	if duration > 0 {
		id := t.ID
		m.timers[id] = time.AfterFunc(duration, func() {
			m.expire(id)
		})
	}

	m.notifyLocked(Event{Type: EventAdded, Toast: t})
	m.mu.Unlock()

	m.logger.Debug("toast shown",
		"id", t.ID,
		"kind", kind,
		"duration_ms", duration.Milliseconds(),
		"persistent", duration <= 0,
	)
	return t.ID
}

// Dismiss removes the toast with the given id, if present. Its pending
// timer, if any, is stopped before the record is dropped.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()

	idx, ok := m.index[id]
	if m.closed || !ok {
		m.mu.Unlock()
		return
	}
	m.removeLocked(idx, ReasonDismissed)
	m.mu.Unlock()

	m.logger.Debug("toast dismissed", "id", id)
}

// expire is the auto-dismiss timer callback.
func (m *Manager) expire(id string) {
	m.mu.Lock()

	idx, ok := m.index[id]
	if m.closed || !ok {
		// Already dismissed or cleared; the cancellation raced the timer.
		m.mu.Unlock()
		return
	}

	t := m.toasts[idx]
	if t.IsPersistent() || time.Now().Before(t.ExpiresAt) {
		// A duplicate stack restarted the clock after this timer fired.
		m.mu.Unlock()
		return
	}

	m.removeLocked(idx, ReasonExpired)
	m.mu.Unlock()

	m.logger.Debug("toast expired", "id", id, "kind", t.Kind)
}

// removeLocked drops the toast at idx. Caller must hold the write lock.
// The timer is stopped before the record goes away so a racing expiry
// callback finds no state to act on.
func (m *Manager) removeLocked(idx int, reason DismissReason) {
	t := m.toasts[idx]

	if timer, ok := m.timers[t.ID]; ok {
		timer.Stop()
		delete(m.timers, t.ID)
	}

	m.toasts = append(m.toasts[:idx], m.toasts[idx+1:]...)
	m.reindexLocked()

	m.notifyLocked(Event{Type: EventRemoved, Toast: t, Reason: reason})
}

// ClearAll stops every pending timer, then empties the collection.
// Safe to call when the collection is already empty.
func (m *Manager) ClearAll() {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}
	count := m.clearLocked(ReasonCleared)
	m.mu.Unlock()

	m.logger.Debug("toasts cleared", "count", count)
}

// clearLocked cancels all timers and drops all toasts. Caller must hold
// the write lock.
func (m *Manager) clearLocked(reason DismissReason) int {
	for id, timer := range m.timers {
		timer.Stop()
		delete(m.timers, id)
	}

	removed := m.toasts
	m.toasts = make([]Toast, 0)
	m.index = make(map[string]int)

	for _, t := range removed {
		m.notifyLocked(Event{Type: EventRemoved, Toast: t, Reason: reason})
	}
	return len(removed)
}

// Active returns a snapshot of the collection in insertion order.
func (m *Manager) Active() []Toast {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// Len returns the number of active toasts.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.toasts)
}

// Get returns a copy of the toast with the given id, or nil.
func (m *Manager) Get(id string) *Toast {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if idx, ok := m.index[id]; ok {
		t := m.toasts[idx]
		return &t
	}
	return nil
}

// SetDoNotDisturb toggles the do-not-disturb gate. While enabled, new
// non-error toasts are suppressed; errors always get through. Toasts
// already on screen are unaffected.
func (m *Manager) SetDoNotDisturb(enabled bool) {
	m.mu.Lock()
	changed := m.dnd != enabled
	m.dnd = enabled
	m.mu.Unlock()

	if changed {
		m.logger.Info("do-not-disturb changed", "enabled", enabled)
	}
}

// DoNotDisturb reports whether the do-not-disturb gate is enabled.
func (m *Manager) DoNotDisturb() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dnd
}

// UpdateDurations replaces the per-kind duration overrides. Applies to
// toasts shown after the call; running timers are not adjusted.
func (m *Manager) UpdateDurations(durations map[Kind]time.Duration) {
	m.mu.Lock()
	m.durations = make(map[Kind]time.Duration, len(durations))
	for k, d := range durations {
		if k.Valid() && d > 0 {
			m.durations[k] = d
		}
	}
	m.mu.Unlock()

	m.logger.Debug("toast durations updated")
}

// Subscribe returns a channel that receives collection change events.
// Sends never block: events are dropped for subscribers that fall behind.
// Caller must call Unsubscribe when done.
func (m *Manager) Subscribe() <-chan Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Event, 10)
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (m *Manager) Unsubscribe(ch <-chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close tears the manager down: stops all timers, drops all toasts with
// reason shutdown, and closes subscriber channels. Subsequent operations
// are no-ops.
func (m *Manager) Close() {
	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()
		return
	}
	count := m.clearLocked(ReasonShutdown)
	m.closed = true

	for _, ch := range m.subscribers {
		close(ch)
	}
	m.subscribers = nil
	m.mu.Unlock()

	m.logger.Debug("toast manager closed", "dropped", count)
}

// durationFor returns the configured duration for a kind, falling back
// to the built-in default.
func (m *Manager) durationFor(kind Kind) time.Duration {
	m.mu.RLock()
	d := m.durations[kind]
	m.mu.RUnlock()

	if d > 0 {
		return d
	}
	return kind.DefaultDuration()
}

// findDuplicateLocked returns the index of an active toast with the same
// kind and message. Caller must hold the lock.
func (m *Manager) findDuplicateLocked(message string, kind Kind) (int, bool) {
	for i := range m.toasts {
		if m.toasts[i].Kind == kind && m.toasts[i].Message == message {
			return i, true
		}
	}
	return 0, false
}

// reindexLocked rebuilds the id index after a removal. Caller must hold
// the write lock.
func (m *Manager) reindexLocked() {
	m.index = make(map[string]int, len(m.toasts))
	for i := range m.toasts {
		m.index[m.toasts[i].ID] = i
	}
}

// notifyLocked sends an event to all subscribers without blocking.
func (m *Manager) notifyLocked(event Event) {
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, skip
		}
	}
}
