package cli

import (
	"context"
	"fmt"
)

// runReport builds the grid for the active monitor and prints a summary of
// the configuration, the monitor and the resulting layout.
func (c *CLI) runReport(ctx context.Context) error {
	p := printer{w: c.out}
	p.info("HyprGrid: Initializing...")

	s, err := c.prepare(ctx)
	if err != nil {
		return err
	}

	if s.configPath != "" {
		p.success("Configuration loaded successfully!")
		p.file(s.configPath)
	} else {
		p.success("Using command-line dimensions")
	}
	p.newline()

	p.title("Active Monitor")
	p.keyValue("Name", s.monitor.Name)
	p.keyValue("Resolution", fmt.Sprintf("%dx%d", s.width, s.height))
	p.keyValue("Orientation", s.dims.Orientation.String())
	p.newline()

	g := s.grid
	cellW, cellH := g.MonitorWidth()/g.Cols(), g.MonitorHeight()/g.Rows()

	p.title("Grid Configuration")
	p.keyValue("Base", fmt.Sprintf("%d rows x %d cols (landscape)", s.base.GridRows, s.base.GridCols))
	p.keyValue("Applied", fmt.Sprintf("%d rows x %d cols", g.Rows(), g.Cols()))
	p.keyValue("Total cells", fmt.Sprintf("%d", g.TotalCells()))
	p.keyValue("Cell size", fmt.Sprintf("%dx%d px", cellW, cellH))
	if s.dims.Rotated() {
		p.warning("Portrait monitor: rows and columns swapped")
		p.detail("configured for landscape as %d x %d", s.base.GridRows, s.base.GridCols)
	}
	p.newline()

	p.success("The Grid is online. End of line.")
	return nil
}
