// Package monitor detects the active output from the Hyprland compositor.
//
// Monitors are read from `hyprctl monitors -j`. The package only reports
// geometry; grid construction lives in package grid.
package monitor

import (
	"context"
	"encoding/json"

	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

// Monitor is one output as reported by hyprctl.
type Monitor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Scale       float64 `json:"scale"`
	Transform   int     `json:"transform"`
	Focused     bool    `json:"focused"`
}

// Size returns the monitor's effective size. Hyprland reports the mode
// size, so width and height are swapped for the 90° and 270° transforms
// (odd transform values, flipped or not).
func (m Monitor) Size() (width, height int) {
	if m.Transform%2 == 1 {
		return m.Height, m.Width
	}
	return m.Width, m.Height
}

// Querier lists the monitors known to the compositor.
type Querier interface {
	Monitors(ctx context.Context) ([]Monitor, error)
}

// Parse decodes the JSON array printed by `hyprctl monitors -j`.
func Parse(data []byte) ([]Monitor, error) {
	var monitors []Monitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMonitorParse, err,
			"failed to parse JSON output from hyprctl.\nOutput was: %s", data)
	}
	return monitors, nil
}

// Focused returns the monitor that currently has focus.
func Focused(monitors []Monitor) (Monitor, error) {
	for _, m := range monitors {
		if m.Focused {
			return m, nil
		}
	}
	return Monitor{}, apperrors.New(apperrors.ErrCodeMonitorNotFound,
		"no focused monitor found.\nThis might indicate an issue with your Hyprland setup.")
}

// ByName returns the monitor with the given output name.
func ByName(monitors []Monitor, name string) (Monitor, error) {
	for _, m := range monitors {
		if m.Name == name {
			return m, nil
		}
	}
	names := make([]string, 0, len(monitors))
	for _, m := range monitors {
		names = append(names, m.Name)
	}
	return Monitor{}, apperrors.New(apperrors.ErrCodeMonitorNotFound,
		"monitor %q not found.\nAvailable monitors: %v", name, names)
}

// Active queries q and selects the named monitor, or the focused one when
// name is empty. The selected monitor must report a positive size.
func Active(ctx context.Context, q Querier, name string) (Monitor, error) {
	monitors, err := q.Monitors(ctx)
	if err != nil {
		return Monitor{}, err
	}

	var m Monitor
	if name != "" {
		m, err = ByName(monitors, name)
	} else {
		m, err = Focused(monitors)
	}
	if err != nil {
		return Monitor{}, err
	}

	if m.Width < 1 || m.Height < 1 {
		return Monitor{}, apperrors.New(apperrors.ErrCodeMonitorParse,
			"monitor %q reports an invalid resolution %dx%d", m.Name, m.Width, m.Height)
	}
	return m, nil
}

// Static is a fixed monitor list, used when the geometry is supplied on
// the command line instead of queried from the compositor.
type Static []Monitor

// Monitors returns the fixed list.
func (s Static) Monitors(ctx context.Context) ([]Monitor, error) {
	return s, nil
}

var _ Querier = Static(nil)
