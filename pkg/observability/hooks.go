// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about monitor
// detection and grid construction without the grid packages depending on a
// specific backend.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    // ... run application
//	}
//
// Callers emit events around each stage:
//
//	observability.Grid().OnMonitorQueryStart(ctx, "hyprctl")
//	// ... query monitors ...
//	observability.Grid().OnMonitorQueryComplete(ctx, "hyprctl", name, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from the grid pipeline.
type GridHooks interface {
	// Monitor detection events. source is "hyprctl" or "static".
	OnMonitorQueryStart(ctx context.Context, source string)
	OnMonitorQueryComplete(ctx context.Context, source, monitor string, duration time.Duration, err error)

	// OnGridBuilt records a grid build. cells is zero when err is non-nil.
	OnGridBuilt(ctx context.Context, rows, cols, cells int, duration time.Duration, err error)
}

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnMonitorQueryStart(context.Context, string) {}
func (NoopGridHooks) OnMonitorQueryComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopGridHooks) OnGridBuilt(context.Context, int, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks GridHooks = NoopGridHooks{}
	hooksMu   sync.RWMutex
)

// SetGridHooks registers custom grid hooks. A nil h is ignored.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
}
