package grid

// Orientation classifies a monitor by its aspect.
type Orientation int

const (
	Landscape Orientation = iota
	Portrait
	Square
)

// String returns the human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "Landscape"
	case Portrait:
		return "Portrait"
	case Square:
		return "Square"
	default:
		return "Unknown"
	}
}

// OrientationOf classifies a width×height rectangle.
func OrientationOf(width, height int) Orientation {
	switch {
	case width > height:
		return Landscape
	case width < height:
		return Portrait
	default:
		return Square
	}
}

// Dimensions are the effective grid dimensions for one monitor.
type Dimensions struct {
	Rows        int
	Cols        int
	Orientation Orientation
}

// TotalCells returns Rows*Cols.
func (d Dimensions) TotalCells() int { return d.Rows * d.Cols }

// Rotated reports whether the configured rows and columns were swapped.
func (d Dimensions) Rotated() bool { return d.Orientation == Portrait }

// Resolve picks the effective grid dimensions for a monitor. Rows and
// columns are configured for a landscape screen; on a portrait monitor
// they are swapped so that cells keep roughly the same shape.
func Resolve(rows, cols, monitorWidth, monitorHeight int) Dimensions {
	o := OrientationOf(monitorWidth, monitorHeight)
	if o == Portrait {
		rows, cols = cols, rows
	}
	return Dimensions{Rows: rows, Cols: cols, Orientation: o}
}
