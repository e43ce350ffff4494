package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGridHooks{}
	g.OnMonitorQueryStart(ctx, "hyprctl")
	g.OnMonitorQueryComplete(ctx, "hyprctl", "DP-1", time.Millisecond, nil)
	g.OnMonitorQueryComplete(ctx, "hyprctl", "", time.Millisecond, errors.New("no hyprland"))
	g.OnGridBuilt(ctx, 10, 20, 200, time.Microsecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}

	custom := &testGridHooks{}
	SetGridHooks(custom)
	if Grid() != custom {
		t.Error("SetGridHooks should set custom hooks")
	}

	Grid().OnGridBuilt(context.Background(), 2, 3, 6, 0, nil)
	if custom.built != 6 {
		t.Errorf("custom hook saw %d cells, want 6", custom.built)
	}

	Reset()
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Reset() should restore NoopGridHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGridHooks{}
	SetGridHooks(custom)
	SetGridHooks(nil)

	if Grid() != custom {
		t.Error("SetGridHooks(nil) should be ignored")
	}

	Reset()
}

type testGridHooks struct {
	NoopGridHooks
	built int
}

func (h *testGridHooks) OnGridBuilt(_ context.Context, _, _, cells int, _ time.Duration, _ error) {
	h.built = cells
}
