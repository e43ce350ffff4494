// Package grid partitions a monitor into a keyboard-addressable overlay grid.
//
// A grid is built in two steps. [Resolve] picks the effective row and column
// counts for a monitor, swapping the configured values on portrait outputs so
// cells stay close to square. [Build] then divides the monitor into equal
// cells and assigns each one a unique two-letter label.
//
// # Labels
//
// Labels are drawn from a 26-letter alphabet that starts with the home row
// (a s d f g h j k l) followed by the remaining letters. Cell i in row-major
// order receives alphabet[i/26] followed by alphabet[i%26], so a 2×2 grid is
// labeled "aa", "as", "ad", "af". Two-letter labels cap a grid at
// [MaxCells] (676) cells; larger grids are rejected, never truncated.
//
// # Example
//
//	dims := grid.Resolve(10, 20, 1920, 1080)
//	g, err := grid.Build(dims.Rows, dims.Cols, 1920, 1080)
//	if err != nil {
//	    return err
//	}
//	if cell, ok := g.Cell("aa"); ok {
//	    x, y := cell.Center()
//	    fmt.Printf("warp to %d,%d\n", x, y)
//	}
//
// A Grid is immutable once built and safe for concurrent readers.
package grid
