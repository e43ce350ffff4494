package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

// lookupCommand creates the lookup command, which resolves labels to cells.
func (c *CLI) lookupCommand() *cobra.Command {
	var center bool

	cmd := &cobra.Command{
		Use:   "lookup <label>...",
		Short: "Resolve grid labels to pixel rectangles",
		Long: `Resolve one or more two-letter labels to the cells they address.

Labels are case-insensitive. With --center only the "X Y" center of each
cell is printed, one per line.`,
		Example: `  hyprgrid lookup as
  hyprgrid lookup as sd fg --center`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.prepare(cmd.Context())
			if err != nil {
				return err
			}

			p := printer{w: c.out}
			for _, arg := range args {
				label := strings.ToLower(strings.TrimSpace(arg))
				cell, ok := s.grid.Cell(label)
				if !ok {
					return apperrors.New(apperrors.ErrCodeInvalidInput,
						"label %q is not on this %dx%d grid", arg, s.grid.Rows(), s.grid.Cols())
				}
				x, y := cell.Center()
				if center {
					fmt.Fprintf(c.out, "%d %d\n", x, y)
					continue
				}
				p.keyValue(StyleHighlight.Render(cell.Label),
					fmt.Sprintf("row %d col %d  %dx%d+%d+%d  center %d,%d",
						cell.Row, cell.Col, cell.Rect.Width, cell.Rect.Height, cell.Rect.X, cell.Rect.Y, x, y))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&center, "center", false, "print only the cell center as \"X Y\"")

	return cmd
}
