package monitor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

// DefaultHyprctl is the hyprctl binary looked up on PATH.
const DefaultHyprctl = "hyprctl"

// Hyprctl queries monitors by running `hyprctl monitors -j`.
type Hyprctl struct {
	// Path is the hyprctl binary. Empty means DefaultHyprctl.
	Path string
}

// Monitors runs hyprctl and parses its output. The command is killed if
// ctx is cancelled.
func (h Hyprctl) Monitors(ctx context.Context) ([]Monitor, error) {
	path := h.Path
	if path == "" {
		path = DefaultHyprctl
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "monitors", "-j")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, apperrors.Wrap(apperrors.ErrCodeMonitorQuery, err,
				"hyprctl command failed with status %d\nstderr: %s",
				exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeMonitorQuery, err,
			"failed to execute '%s monitors -j'.\nPlease ensure you are running Hyprland and hyprctl is installed.", path)
	}

	return Parse(stdout.Bytes())
}

var _ Querier = Hyprctl{}
