package grid

import "testing"

func TestOrientationOf(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Orientation
	}{
		{"landscape 1080p", 1920, 1080, Landscape},
		{"portrait 1080p", 1080, 1920, Portrait},
		{"square", 1080, 1080, Square},
		{"barely landscape", 1001, 1000, Landscape},
		{"barely portrait", 1000, 1001, Portrait},
		{"ultrawide", 3440, 1440, Landscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrientationOf(tt.width, tt.height); got != tt.want {
				t.Errorf("OrientationOf(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{Landscape, "Landscape"},
		{Portrait, "Portrait"},
		{Square, "Square"},
		{Orientation(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		rows, cols    int
		width, height int
		want          Dimensions
	}{
		{
			name: "landscape keeps configured",
			rows: 10, cols: 20, width: 2560, height: 1440,
			want: Dimensions{Rows: 10, Cols: 20, Orientation: Landscape},
		},
		{
			name: "portrait swaps",
			rows: 10, cols: 20, width: 1080, height: 1920,
			want: Dimensions{Rows: 20, Cols: 10, Orientation: Portrait},
		},
		{
			name: "square keeps configured",
			rows: 10, cols: 20, width: 1920, height: 1920,
			want: Dimensions{Rows: 10, Cols: 20, Orientation: Square},
		},
		{
			name: "portrait with equal dims is a no-op swap",
			rows: 7, cols: 7, width: 800, height: 1280,
			want: Dimensions{Rows: 7, Cols: 7, Orientation: Portrait},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.rows, tt.cols, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
			if got.TotalCells() != tt.rows*tt.cols {
				t.Errorf("TotalCells() = %d, want %d", got.TotalCells(), tt.rows*tt.cols)
			}
		})
	}
}

func TestResolveSwapLaw(t *testing.T) {
	monitors := [][2]int{{1920, 1080}, {1080, 1920}, {1440, 1440}, {3840, 2160}, {1200, 1920}}

	for rows := 2; rows <= 50; rows += 3 {
		for cols := 2; cols <= 50; cols += 4 {
			for _, m := range monitors {
				d := Resolve(rows, cols, m[0], m[1])
				o := OrientationOf(m[0], m[1])
				if d.Orientation != o {
					t.Fatalf("Resolve(%d,%d,%d,%d) orientation = %v, want %v", rows, cols, m[0], m[1], d.Orientation, o)
				}
				wantRows, wantCols := rows, cols
				if o == Portrait {
					wantRows, wantCols = cols, rows
				}
				if d.Rows != wantRows || d.Cols != wantCols {
					t.Fatalf("Resolve(%d,%d,%d,%d) = %dx%d, want %dx%d", rows, cols, m[0], m[1], d.Rows, d.Cols, wantRows, wantCols)
				}
				if d.Rotated() != (o == Portrait) {
					t.Fatalf("Rotated() = %v for %v", d.Rotated(), o)
				}
			}
		}
	}
}
