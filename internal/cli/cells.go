package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hyprgrid/hyprgrid/pkg/grid"
)

// cellsOptions holds flags for the cells command.
type cellsOptions struct {
	json   bool
	sorted bool
}

// cellsCommand creates the cells command, which lists every labeled cell.
func (c *CLI) cellsCommand() *cobra.Command {
	var opts cellsOptions

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "List every grid cell with its label and pixel rectangle",
		Long: `List every grid cell of the active monitor in row-major order.

With --json the grid is written as a single JSON document suitable for
scripts that warp the cursor or move windows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.prepare(cmd.Context())
			if err != nil {
				return err
			}
			cells := s.grid.Cells()
			if opts.sorted {
				sort.Slice(cells, func(i, j int) bool { return cells[i].Label < cells[j].Label })
			}
			if opts.json {
				return writeCellsJSON(c.out, s, cells)
			}
			fmt.Fprintln(c.out, cellsTable(cells))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&opts.sorted, "sorted", false, "order cells by label instead of position")

	return cmd
}

// =============================================================================
// JSON Output
// =============================================================================

type cellJSON struct {
	Label   string `json:"label"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	CenterX int    `json:"center_x"`
	CenterY int    `json:"center_y"`
}

type gridJSON struct {
	Monitor     string     `json:"monitor"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Orientation string     `json:"orientation"`
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	TotalCells  int        `json:"total_cells"`
	Cells       []cellJSON `json:"cells"`
}

func writeCellsJSON(w io.Writer, s *session, cells []grid.Cell) error {
	out := gridJSON{
		Monitor:     s.monitor.Name,
		Width:       s.grid.MonitorWidth(),
		Height:      s.grid.MonitorHeight(),
		Orientation: s.dims.Orientation.String(),
		Rows:        s.grid.Rows(),
		Cols:        s.grid.Cols(),
		TotalCells:  s.grid.TotalCells(),
		Cells:       make([]cellJSON, 0, len(cells)),
	}
	for _, cell := range cells {
		cx, cy := cell.Center()
		out.Cells = append(out.Cells, cellJSON{
			Label:   cell.Label,
			Row:     cell.Row,
			Col:     cell.Col,
			X:       cell.Rect.X,
			Y:       cell.Rect.Y,
			Width:   cell.Rect.Width,
			Height:  cell.Rect.Height,
			CenterX: cx,
			CenterY: cy,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// =============================================================================
// Table Output
// =============================================================================

func cellsTable(cells []grid.Cell) *table.Table {
	rows := make([][]string, 0, len(cells))
	for _, cell := range cells {
		cx, cy := cell.Center()
		rows = append(rows, []string{
			cell.Label,
			strconv.Itoa(cell.Row),
			strconv.Itoa(cell.Col),
			fmt.Sprintf("%d,%d", cell.Rect.X, cell.Rect.Y),
			fmt.Sprintf("%dx%d", cell.Rect.Width, cell.Rect.Height),
			fmt.Sprintf("%d,%d", cx, cy),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("LABEL", "ROW", "COL", "ORIGIN", "SIZE", "CENTER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == 0:
				return styleTableCell.Foreground(colorCyan)
			default:
				return styleTableCell
			}
		})
}
