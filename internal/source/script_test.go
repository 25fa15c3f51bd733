package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitachoice/toastui/internal/toast"
)

func TestScriptSource_Name(t *testing.T) {
	assert.Equal(t, "script", NewScriptSource().Name())
}

func TestScriptSource_Run(t *testing.T) {
	steps := []Step{
		{Op: OpShow, Kind: toast.KindSuccess, Payload: "first"},
		{Op: OpShow, Kind: toast.KindWarning, Payload: "second", Persistent: true},
		{Op: OpDismiss, Ref: 1},
		{Op: OpShow, Kind: toast.KindInfo, Payload: "third"},
		{Op: OpClear},
	}

	rec := &recorder{}
	src := NewScriptSourceWithSteps(steps)

	err := src.Run(context.Background(), rec)
	require.NoError(t, err)

	require.Len(t, rec.shows, 3)
	assert.Equal(t, "first", rec.shows[0].payload)
	assert.False(t, rec.shows[0].persistent)
	assert.Equal(t, "second", rec.shows[1].payload)
	assert.True(t, rec.shows[1].persistent)
	assert.Equal(t, "third", rec.shows[2].payload)

	assert.Equal(t, []string{"id-1"}, rec.dismissed)
	assert.Equal(t, 1, rec.cleared)
}

func TestScriptSource_RunAgainstManager(t *testing.T) {
	steps := []Step{
		{Op: OpShow, Kind: toast.KindSuccess, Payload: "kept"},
		{Op: OpShow, Kind: toast.KindWarning, Payload: "removed", Persistent: true},
		{Op: OpShow, Kind: toast.KindInfo, Payload: "also kept"},
		{Op: OpDismiss, Ref: 1},
	}

	manager := toast.NewManager(toast.Options{})
	defer manager.Close()

	err := NewScriptSourceWithSteps(steps).Run(context.Background(), manager)
	require.NoError(t, err)

	active := manager.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "kept", active[0].Message)
	assert.Equal(t, "also kept", active[1].Message)
}

func TestScriptSource_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	src := NewScriptSourceWithSteps([]Step{
		{Op: OpShow, Kind: toast.KindInfo, Payload: "never shown"},
	})

	err := src.Run(ctx, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.shows)
}

func TestScriptSource_RunCanceledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	rec := &recorder{}
	src := NewScriptSourceWithSteps([]Step{
		{Op: OpShow, Kind: toast.KindInfo, Payload: "shown"},
		{Delay: 5 * time.Second, Op: OpShow, Kind: toast.KindInfo, Payload: "never shown"},
	})

	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, rec) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	require.Len(t, rec.shows, 1)
	assert.Equal(t, "shown", rec.shows[0].payload)
}

func TestDemoScript(t *testing.T) {
	steps := DemoScript()
	require.NotEmpty(t, steps)

	for i, step := range steps {
		switch step.Op {
		case OpShow:
			assert.True(t, step.Kind.Valid(), "step %d has invalid kind", i)
			assert.NotNil(t, step.Payload, "step %d has no payload", i)
		case OpDismiss:
			require.Less(t, step.Ref, i, "step %d dismisses a later step", i)
			assert.Equal(t, OpShow, steps[step.Ref].Op, "step %d ref is not a show", i)
		}
	}
}
