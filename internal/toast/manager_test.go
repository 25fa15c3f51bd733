package toast

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m := NewManager(Options{})
	defer m.Close()

	assert.NotNil(t, m)
	assert.Equal(t, 0, m.Len())
}

func TestManager_Show(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	id := m.Show("x", "", 0)
	require.NotEmpty(t, id)

	active := m.Active()
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "x", active[0].Message)
	assert.Equal(t, KindInfo, active[0].Kind)
	assert.Equal(t, 3000*time.Millisecond, active[0].Duration)
	assert.False(t, active[0].ExpiresAt.IsZero())
}

func TestManager_ShowDefaultDurations(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	t.Run("error", func(t *testing.T) {
		id := m.Show("fail", KindError, 0)
		assert.Equal(t, 5000*time.Millisecond, m.Get(id).Duration)
	})

	t.Run("success", func(t *testing.T) {
		id := m.Show("ok", KindSuccess, 0)
		assert.Equal(t, 2000*time.Millisecond, m.Get(id).Duration)
	})

	t.Run("warning", func(t *testing.T) {
		id := m.Show("careful", KindWarning, 0)
		assert.Equal(t, 3000*time.Millisecond, m.Get(id).Duration)
	})

	t.Run("invalid kind falls back to info", func(t *testing.T) {
		id := m.Show("odd", Kind("shiny"), 0)
		toast := m.Get(id)
		assert.Equal(t, KindInfo, toast.Kind)
		assert.Equal(t, 3000*time.Millisecond, toast.Duration)
	})

	t.Run("explicit duration overrides the default", func(t *testing.T) {
		id := m.Show("slow", KindSuccess, 10*time.Second)
		assert.Equal(t, 10*time.Second, m.Get(id).Duration)
	})
}

func TestManager_ShowUniqueIDs(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	seen := make(map[string]bool)
	for range 200 {
		id := m.Show("burst", KindInfo, time.Minute)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 200, m.Len())
}

func TestManager_ShowNormalizesPayload(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	id := m.Show(map[string]any{"error": "bad input"}, KindError, 0)
	assert.Equal(t, "bad input", m.Get(id).Message)

	id = m.Show(nil, KindError, 0)
	assert.Equal(t, FallbackMessage, m.Get(id).Message)
}

func TestManager_ShowPersistent(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	id := m.ShowPersistent("working...", KindInfo)
	require.NotEmpty(t, id)

	toast := m.Get(id)
	require.NotNil(t, toast)
	assert.True(t, toast.IsPersistent())
	assert.Zero(t, toast.Duration)
	assert.True(t, toast.ExpiresAt.IsZero())

	// No timer is scheduled, so it outlives any wait
	time.Sleep(150 * time.Millisecond)
	assert.NotNil(t, m.Get(id))

	m.Dismiss(id)
	assert.Nil(t, m.Get(id))
}

func TestManager_Dismiss(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	m.Show("A", KindInfo, time.Minute)
	idB := m.Show("B", KindInfo, time.Minute)
	m.Show("C", KindInfo, time.Minute)

	active := m.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []string{"A", "B", "C"}, messages(active))

	m.Dismiss(idB)

	active = m.Active()
	require.Len(t, active, 2)
	assert.Equal(t, []string{"A", "C"}, messages(active))
}

func TestManager_DismissUnknown(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	m.Show("keep", KindInfo, time.Minute)

	assert.NotPanics(t, func() {
		m.Dismiss("no-such-id")
	})
	assert.Equal(t, 1, m.Len())
}

func TestManager_DismissCancelsTimer(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	events := m.Subscribe()
	defer m.Unsubscribe(events)

	id := m.Show("quick", KindInfo, 30*time.Millisecond)
	m.Dismiss(id)

	// Wait well past the original expiry; the stopped timer must not
	// produce a second removal.
	time.Sleep(150 * time.Millisecond)

	var removed []Event
	for {
		select {
		case ev := <-events:
			if ev.Type == EventRemoved {
				removed = append(removed, ev)
			}
			continue
		default:
		}
		break
	}

	require.Len(t, removed, 1)
	assert.Equal(t, ReasonDismissed, removed[0].Reason)
	assert.Equal(t, id, removed[0].Toast.ID)
}

func TestManager_Expire(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	events := m.Subscribe()
	defer m.Unsubscribe(events)

	id := m.Show("gone soon", KindInfo, 30*time.Millisecond)
	assert.Equal(t, 1, m.Len())

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, m.Len())

	var reasons []DismissReason
	for {
		select {
		case ev := <-events:
			if ev.Type == EventRemoved {
				reasons = append(reasons, ev.Reason)
				assert.Equal(t, id, ev.Toast.ID)
			}
			continue
		default:
		}
		break
	}
	assert.Equal(t, []DismissReason{ReasonExpired}, reasons)
}

func TestManager_ClearAll(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	events := m.Subscribe()
	defer m.Unsubscribe(events)

	m.Show("timed1", KindInfo, 40*time.Millisecond)
	m.Show("timed2", KindError, 40*time.Millisecond)
	m.ShowPersistent("pinned", KindWarning)
	require.Equal(t, 3, m.Len())

	m.ClearAll()
	assert.Equal(t, 0, m.Len())

	// Timers were canceled: waiting past their deadlines changes nothing
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, m.Len())

	var removed int
	for {
		select {
		case ev := <-events:
			if ev.Type == EventRemoved {
				removed++
				assert.Equal(t, ReasonCleared, ev.Reason)
			}
			continue
		default:
		}
		break
	}
	assert.Equal(t, 3, removed)
}

func TestManager_ClearAllEmpty(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	assert.NotPanics(t, func() {
		m.ClearAll()
		m.ClearAll()
	})
}

func TestManager_Helpers(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	tests := []struct {
		name string
		show func(any) string
		kind Kind
	}{
		{"success", m.Success, KindSuccess},
		{"error", m.Error, KindError},
		{"info", m.Info, KindInfo},
		{"warning", m.Warning, KindWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.show("msg")
			toast := m.Get(id)
			require.NotNil(t, toast)
			assert.Equal(t, tt.kind, toast.Kind)
			assert.Equal(t, tt.kind.DefaultDuration(), toast.Duration)
		})
	}
}

func TestManager_Subscribe(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	events := m.Subscribe()

	id := m.Show("hello", KindSuccess, time.Minute)

	ev := <-events
	assert.Equal(t, EventAdded, ev.Type)
	assert.Equal(t, id, ev.Toast.ID)
	assert.Equal(t, "hello", ev.Toast.Message)

	m.Unsubscribe(events)

	// Channel is closed after unsubscribe
	_, open := <-events
	assert.False(t, open)
}

func TestManager_UpdateDurations(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	m.UpdateDurations(map[Kind]time.Duration{
		KindInfo:      70 * time.Millisecond,
		Kind("bogus"): time.Second,
	})

	id := m.Show("short", KindInfo, 0)
	assert.Equal(t, 70*time.Millisecond, m.Get(id).Duration)

	// Kinds without an override keep the built-in default
	id = m.Show("fail", KindError, 0)
	assert.Equal(t, 5000*time.Millisecond, m.Get(id).Duration)
}

func TestManager_DoNotDisturb(t *testing.T) {
	m := newTestManager()
	defer m.Close()

	m.SetDoNotDisturb(true)
	assert.True(t, m.DoNotDisturb())

	assert.Empty(t, m.Show("quiet", KindInfo, 0))
	assert.Empty(t, m.ShowPersistent("quiet", KindSuccess))
	assert.Equal(t, 0, m.Len())

	// Errors bypass the gate
	id := m.Show("broken", KindError, 0)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, m.Len())

	m.SetDoNotDisturb(false)
	assert.NotEmpty(t, m.Show("loud again", KindInfo, 0))
	assert.Equal(t, 2, m.Len())
}

func TestManager_StackDuplicates(t *testing.T) {
	m := NewManager(Options{
		StackDuplicates: true,
		Logger:          testLogger(),
	})
	defer m.Close()

	first := m.Show("saved", KindSuccess, time.Minute)
	second := m.Show("saved", KindSuccess, time.Minute)

	assert.Equal(t, first, second)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m.Get(first).StackCount)

	// Different message still appends
	m.Show("saved twice", KindSuccess, time.Minute)
	assert.Equal(t, 2, m.Len())

	// Same message, different kind still appends
	m.Show("saved", KindInfo, time.Minute)
	assert.Equal(t, 3, m.Len())
}

func TestManager_Close(t *testing.T) {
	m := newTestManager()

	events := m.Subscribe()

	m.Show("doomed", KindInfo, time.Minute)
	m.ShowPersistent("also doomed", KindWarning)

	m.Close()
	assert.Equal(t, 0, m.Len())

	// Removal events carry the shutdown reason, then the channel closes
	var reasons []DismissReason
	for ev := range events {
		if ev.Type == EventRemoved {
			reasons = append(reasons, ev.Reason)
		}
	}
	assert.Equal(t, []DismissReason{ReasonShutdown, ReasonShutdown}, reasons)

	// Every operation is a no-op afterwards
	assert.Empty(t, m.Show("late", KindInfo, 0))
	assert.NotPanics(t, func() {
		m.Dismiss("anything")
		m.ClearAll()
		m.Close()
	})
	assert.Equal(t, 0, m.Len())
}

// newTestManager returns a manager that logs nowhere.
func newTestManager() *Manager {
	return NewManager(Options{Logger: testLogger()})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// messages extracts toast messages in collection order.
func messages(toasts []Toast) []string {
	out := make([]string, len(toasts))
	for i, t := range toasts {
		out[i] = t.Message
	}
	return out
}
