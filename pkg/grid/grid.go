package grid

import (
	"sort"

	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

// Rect is a pixel rectangle in monitor coordinates. X and Y are the
// top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Center returns the rectangle's center point, rounded down. This is the
// mouse warp target for a cell.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Cell is one labeled region of the grid.
type Cell struct {
	Label string
	Row   int
	Col   int
	Rect  Rect
}

// Center returns the center point of the cell's rectangle.
func (c Cell) Center() (x, y int) { return c.Rect.Center() }

// Grid is an immutable set of labeled cells covering one monitor.
//
// Cells are stored in row-major order; the label index maps each label to
// its position so lookups work in both directions.
type Grid struct {
	rows, cols    int
	width, height int
	cells         []Cell
	index         map[string]int
}

// Build partitions a monitorWidth×monitorHeight screen into rows×cols equal
// cells. Cell sizes use integer division, so the right and bottom edges may
// leave a few pixels unaddressed.
//
// Build fails with ErrCodeInvalidInput for non-positive arguments and with
// ErrCodeGridTooLarge when rows*cols exceeds MaxCells.
func Build(rows, cols, monitorWidth, monitorHeight int) (*Grid, error) {
	for _, p := range []struct {
		name  string
		value int
	}{
		{"rows", rows},
		{"cols", cols},
		{"monitor width", monitorWidth},
		{"monitor height", monitorHeight},
	} {
		if err := apperrors.ValidatePositive(p.name, p.value); err != nil {
			return nil, err
		}
	}

	labels, err := Labels(rows * cols)
	if err != nil {
		return nil, err
	}

	cellWidth := monitorWidth / cols
	cellHeight := monitorHeight / rows

	g := &Grid{
		rows:   rows,
		cols:   cols,
		width:  monitorWidth,
		height: monitorHeight,
		cells:  make([]Cell, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := len(g.cells)
			g.cells = append(g.cells, Cell{
				Label: labels[i],
				Row:   r,
				Col:   c,
				Rect: Rect{
					X:      c * cellWidth,
					Y:      r * cellHeight,
					Width:  cellWidth,
					Height: cellHeight,
				},
			})
			g.index[labels[i]] = i
		}
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// MonitorWidth returns the width the grid was built for.
func (g *Grid) MonitorWidth() int { return g.width }

// MonitorHeight returns the height the grid was built for.
func (g *Grid) MonitorHeight() int { return g.height }

// TotalCells returns the number of cells, always Rows()*Cols().
func (g *Grid) TotalCells() int { return len(g.cells) }

// Cell looks up a cell by its exact, case-sensitive label.
func (g *Grid) Cell(label string) (Cell, bool) {
	i, ok := g.index[label]
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// HasLabel reports whether label addresses a cell in this grid.
func (g *Grid) HasLabel(label string) bool {
	_, ok := g.index[label]
	return ok
}

// CellAt returns the cell at a grid position.
func (g *Grid) CellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// Labels returns every label, sorted lexicographically.
func (g *Grid) Labels() []string {
	labels := make([]string, 0, len(g.index))
	for label := range g.index {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
