package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hyprgrid/hyprgrid/internal/config"
	"github.com/hyprgrid/hyprgrid/pkg/buildinfo"
	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
	"github.com/hyprgrid/hyprgrid/pkg/grid"
	"github.com/hyprgrid/hyprgrid/pkg/monitor"
	"github.com/hyprgrid/hyprgrid/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "hyprgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out  io.Writer
	opts options
}

// options are the persistent flags shared by every grid command.
type options struct {
	verbose    bool
	configPath string
	rows       int
	cols       int
	rowsSet    bool
	colsSet    bool
	monitor    string
	width      int
	height     int
	name       string
	hyprctl    string
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running it without a subcommand prints the grid report.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "HyprGrid divides the active monitor into a keyboard-addressable grid",
		Long: `HyprGrid divides the focused Hyprland monitor into a grid of cells, each
addressed by a two-letter label typed from the home row first.

Rows and columns are read from ~/.config/hypr/hg_config.conf and are swapped
automatically on portrait monitors so cells stay roughly square.`,
		Example: `  # Show the grid report for the focused monitor
  hyprgrid

  # List every cell with its pixel rectangle
  hyprgrid cells

  # Print the warp target for a label
  hyprgrid lookup sd --center

  # Try a layout without Hyprland
  hyprgrid --width 1080 --height 1920 --rows 8 --cols 16`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			c.opts.rowsSet = cmd.Flags().Changed("rows")
			c.opts.colsSet = cmd.Flags().Changed("cols")
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	f := root.PersistentFlags()
	f.BoolVar(&c.opts.verbose, "verbose", false, "enable verbose logging")
	f.StringVarP(&c.opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	f.IntVar(&c.opts.rows, "rows", 0, "override grid_rows (landscape rows)")
	f.IntVar(&c.opts.cols, "cols", 0, "override grid_cols (landscape columns)")
	f.StringVarP(&c.opts.monitor, "monitor", "m", "", "use this monitor instead of the focused one")
	f.IntVar(&c.opts.width, "width", 0, "monitor width in pixels (skips hyprctl, requires --height)")
	f.IntVar(&c.opts.height, "height", 0, "monitor height in pixels (skips hyprctl, requires --width)")
	f.StringVar(&c.opts.name, "name", "manual", "monitor name reported with --width/--height")
	f.StringVar(&c.opts.hyprctl, "hyprctl", monitor.DefaultHyprctl, "path to the hyprctl binary")

	root.AddCommand(c.cellsCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	humanizeErrors(root)
	return root
}

// =============================================================================
// Grid Pipeline
// =============================================================================

// session is everything derived for one run: the validated config, the
// selected monitor, the resolved dimensions and the built grid.
type session struct {
	configPath string
	base       *config.Config
	monitor    monitor.Monitor
	width      int
	height     int
	dims       grid.Dimensions
	grid       *grid.Grid
}

// prepare loads the configuration and detects the monitor before the grid
// is built, so failures in either never reach the builder.
func (c *CLI) prepare(ctx context.Context) (*session, error) {
	logger := loggerFromContext(ctx)

	cfg, path, err := c.loadConfig(logger)
	if err != nil {
		return nil, err
	}

	m, err := c.detectMonitor(ctx, logger)
	if err != nil {
		return nil, err
	}

	w, h := m.Size()
	dims := grid.Resolve(cfg.GridRows, cfg.GridCols, w, h)
	logger.Debug("resolved grid", "rows", dims.Rows, "cols", dims.Cols, "orientation", dims.Orientation)

	start := time.Now()
	g, err := grid.Build(dims.Rows, dims.Cols, w, h)
	cells := 0
	if g != nil {
		cells = g.TotalCells()
	}
	observability.Grid().OnGridBuilt(ctx, dims.Rows, dims.Cols, cells, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &session{
		configPath: path,
		base:       cfg,
		monitor:    m,
		width:      w,
		height:     h,
		dims:       dims,
		grid:       g,
	}, nil
}

// loadConfig reads the config file and applies --rows/--cols. When both
// overrides are given a missing config file is not an error.
func (c *CLI) loadConfig(logger *log.Logger) (*config.Config, string, error) {
	var overrides config.Overrides
	if c.opts.rowsSet {
		overrides.Rows = &c.opts.rows
	}
	if c.opts.colsSet {
		overrides.Cols = &c.opts.cols
	}

	res, err := config.Load(c.opts.configPath)
	if err != nil {
		if !(apperrors.Is(err, apperrors.ErrCodeConfigNotFound) && overrides.Rows != nil && overrides.Cols != nil) {
			return nil, "", err
		}
		logger.Debug("no config file, using command-line dimensions")
		res = &config.Result{Config: config.Default()}
	} else {
		logger.Debug("loaded config", "path", res.Path, "rows", res.Config.GridRows, "cols", res.Config.GridCols)
	}

	for _, w := range res.Warnings {
		logger.Warn(w, "path", res.Path)
	}

	cfg, err := res.Config.Apply(overrides)
	if err != nil {
		return nil, "", err
	}
	return cfg, res.Path, nil
}

// detectMonitor selects the monitor to partition, either from
// --width/--height or by asking hyprctl.
func (c *CLI) detectMonitor(ctx context.Context, logger *log.Logger) (monitor.Monitor, error) {
	var (
		q      monitor.Querier
		source string
	)
	switch {
	case c.opts.width != 0 || c.opts.height != 0:
		if c.opts.width <= 0 || c.opts.height <= 0 {
			return monitor.Monitor{}, apperrors.New(apperrors.ErrCodeInvalidInput,
				"--width and --height must both be positive, got %dx%d", c.opts.width, c.opts.height)
		}
		name := c.opts.name
		if c.opts.monitor != "" {
			name = c.opts.monitor
		}
		source = "static"
		q = monitor.Static{{
			Name:    name,
			Width:   c.opts.width,
			Height:  c.opts.height,
			Scale:   1,
			Focused: true,
		}}
	default:
		source = "hyprctl"
		q = monitor.Hyprctl{Path: c.opts.hyprctl}
	}

	hooks := observability.Grid()
	hooks.OnMonitorQueryStart(ctx, source)
	prog := newProgress(logger)
	m, err := monitor.Active(ctx, q, c.opts.monitor)
	hooks.OnMonitorQueryComplete(ctx, source, m.Name, time.Since(prog.start), err)
	if err != nil {
		return monitor.Monitor{}, err
	}
	prog.done("Detected monitor " + m.Name)
	return m, nil
}

// =============================================================================
// Errors
// =============================================================================

// userError presents an error by its user message while keeping the
// underlying chain for errors.Is/As.
type userError struct{ err error }

func (e *userError) Error() string { return apperrors.UserMessage(e.err) }
func (e *userError) Unwrap() error { return e.err }

// userFacing converts err for display. Context cancellation passes through
// unchanged.
func userFacing(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	return &userError{err: err}
}

// humanizeErrors wraps the RunE of cmd and all its subcommands with
// userFacing.
func humanizeErrors(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return userFacing(run(cmd, args))
		}
	}
	for _, sub := range cmd.Commands() {
		humanizeErrors(sub)
	}
}
