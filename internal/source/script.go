package source

import (
	"context"
	"time"

	"github.com/vitachoice/toastui/internal/toast"
)

// Op identifies what a scripted step does.
type Op int

const (
	// OpShow displays a toast built from the step's payload and kind.
	OpShow Op = iota
	// OpDismiss dismisses the toast shown by an earlier step.
	OpDismiss
	// OpClear dismisses every active toast at once.
	OpClear
)

// Step is one beat of a scripted scenario.
type Step struct {
	// Delay is the pause before the step fires.
	Delay time.Duration

	Op         Op
	Kind       toast.Kind
	Payload    any
	Persistent bool

	// Ref is the index of the step whose toast OpDismiss targets.
	Ref int
}

// ScriptSource replays a fixed scenario of toast events.
type ScriptSource struct {
	steps []Step
}

// NewScriptSource creates a ScriptSource running the built-in demo.
func NewScriptSource() *ScriptSource {
	return &ScriptSource{steps: DemoScript()}
}

// NewScriptSourceWithSteps creates a ScriptSource with a custom scenario.
func NewScriptSourceWithSteps(steps []Step) *ScriptSource {
	return &ScriptSource{steps: steps}
}

// Name returns the source identifier.
func (s *ScriptSource) Name() string {
	return "script"
}

// Run plays the scenario against the notifier, honoring step delays.
// Toast ids are tracked per step so later steps can dismiss them.
func (s *ScriptSource) Run(ctx context.Context, n Notifier) error {
	ids := make(map[int]string, len(s.steps))

	for i, step := range s.steps {
		if step.Delay > 0 {
			timer := time.NewTimer(step.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		switch step.Op {
		case OpShow:
			if step.Persistent {
				ids[i] = n.ShowPersistent(step.Payload, step.Kind)
			} else {
				ids[i] = n.Show(step.Payload, step.Kind, 0)
			}
		case OpDismiss:
			if id, ok := ids[step.Ref]; ok {
				n.Dismiss(id)
			}
		case OpClear:
			n.ClearAll()
		}
	}

	return nil
}

// DemoScript returns the built-in scenario: every kind, a duplicate for
// stack mode, payloads that need normalizing, and a persistent toast
// that a later step dismisses.
func DemoScript() []Step {
	return []Step{
		{Op: OpShow, Kind: toast.KindInfo, Payload: "Syncing workspace"},
		{Delay: 1200 * time.Millisecond, Op: OpShow, Kind: toast.KindSuccess, Payload: "Workspace synced"},
		{Delay: 1500 * time.Millisecond, Op: OpShow, Kind: toast.KindWarning, Payload: "Storage almost full", Persistent: true},
		{Delay: 1800 * time.Millisecond, Op: OpShow, Kind: toast.KindError, Payload: map[string]any{
			"response": map[string]any{
				"status": 502,
				"config": map[string]any{"url": "/api/sync"},
			},
			"message": "Bad Gateway",
		}},
		{Delay: 2 * time.Second, Op: OpShow, Kind: toast.KindError, Payload: map[string]any{"error": "upload quota exceeded"}},
		{Delay: 1500 * time.Millisecond, Op: OpDismiss, Ref: 2},
		{Delay: 1200 * time.Millisecond, Op: OpShow, Kind: toast.KindSuccess, Payload: "Report exported"},
		{Delay: 800 * time.Millisecond, Op: OpShow, Kind: toast.KindSuccess, Payload: "Report exported"},
		{Delay: 1500 * time.Millisecond, Op: OpShow, Kind: toast.KindInfo, Payload: "Script finished, keys stay live"},
	}
}
