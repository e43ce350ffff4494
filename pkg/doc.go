// Package pkg provides the libraries behind HyprGrid, a keyboard-driven
// grid overlay for Hyprland.
//
// # Overview
//
// HyprGrid divides a monitor into a grid of rectangular cells and gives each
// cell a two-letter label typed from the home row first. The pkg directory
// is organized as:
//
//  1. [grid] - Orientation resolution, label generation and the grid itself
//  2. [monitor] - Active monitor detection through hyprctl
//  3. [errors] - Coded errors with user-facing messages
//  4. [observability] - Hooks for monitor detection and grid builds
//  5. [buildinfo] - Version information set at link time
//
// # Architecture
//
// The typical data flow through HyprGrid:
//
//	hg_config.conf (landscape rows x cols)
//	         ↓
//	    [monitor] package (focused monitor size)
//	         ↓
//	    grid.Resolve (swap rows and cols on portrait monitors)
//	         ↓
//	    grid.Build (cells, labels, label index)
//
// # Quick Start
//
//	m, err := monitor.Active(ctx, monitor.Hyprctl{}, "")
//	if err != nil {
//	    return err
//	}
//	w, h := m.Size()
//	dims := grid.Resolve(10, 20, w, h)
//	g, err := grid.Build(dims.Rows, dims.Cols, w, h)
//	if err != nil {
//	    return err
//	}
//	cell, ok := g.Cell("as")
//
// [grid]: https://pkg.go.dev/github.com/hyprgrid/hyprgrid/pkg/grid
// [monitor]: https://pkg.go.dev/github.com/hyprgrid/hyprgrid/pkg/monitor
// [errors]: https://pkg.go.dev/github.com/hyprgrid/hyprgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/hyprgrid/hyprgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/hyprgrid/hyprgrid/pkg/buildinfo
package pkg
