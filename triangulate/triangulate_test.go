package triangulate

import "testing"

func TestTriangulate_TooFewVertices(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
	}{
		{"nil", nil},
		{"empty", []float64{}},
		{"one point", []float64{0, 0}},
		{"two points", []float64{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Triangulate(tt.coords); got != nil {
				t.Errorf("Triangulate(%v) = %v, want nil", tt.coords, got)
			}
		})
	}
}

func TestTriangulate_Triangle(t *testing.T) {
	got := Triangulate([]float64{0, 0, 6, 0, 3, 6})
	if len(got) != 3 {
		t.Fatalf("triangle produced %d indices, want 3", len(got))
	}
	seen := [3]bool{}
	for _, idx := range got {
		if idx < 0 || idx > 2 {
			t.Fatalf("index %d out of range", idx)
		}
		seen[idx] = true
	}
	if !seen[0] || !seen[1] || !seen[2] {
		t.Errorf("triangle indices %v do not cover all vertices", got)
	}
}

func TestTriangulate_ConvexCount(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
	}{
		{"square", []float64{0, 0, 10, 0, 10, 10, 0, 10}},
		{"pentagon", []float64{0, -5, 5, -1, 3, 5, -3, 5, -5, -1}},
		{"hexagon", []float64{2, 0, 1, 2, -1, 2, -2, 0, -1, -2, 1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.coords) / 2
			got := Triangulate(tt.coords)

			// A simple polygon with n vertices has exactly n-2 triangles.
			if want := 3 * (n - 2); len(got) != want {
				t.Fatalf("got %d indices, want %d", len(got), want)
			}
			for _, idx := range got {
				if idx < 0 || idx >= n {
					t.Errorf("index %d out of range [0, %d)", idx, n)
				}
			}
			for i := 0; i+2 < len(got); i += 3 {
				if area := triangleArea(tt.coords, got[i], got[i+1], got[i+2]); area == 0 {
					t.Errorf("triangle %d (%d,%d,%d) is degenerate",
						i/3, got[i], got[i+1], got[i+2])
				}
			}
		})
	}
}

func TestTriangulate_EitherWinding(t *testing.T) {
	cw := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	ccw := []float64{0, 0, 0, 10, 10, 10, 10, 0}

	for _, tt := range []struct {
		name   string
		coords []float64
	}{{"clockwise", cw}, {"counter-clockwise", ccw}} {
		t.Run(tt.name, func(t *testing.T) {
			got := Triangulate(tt.coords)
			if len(got) != 6 {
				t.Fatalf("got %d indices, want 6", len(got))
			}
		})
	}
}

func TestTriangulate_Deterministic(t *testing.T) {
	coords := []float64{0, -5, 5, -1, 3, 5, -3, 5, -5, -1}
	first := Triangulate(coords)
	second := Triangulate(coords)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestTriangulate_CollinearRun(t *testing.T) {
	// A square with a redundant midpoint on the top edge. The collinear
	// vertex must not break triangulation.
	coords := []float64{0, 0, 5, 0, 10, 0, 10, 10, 0, 10}
	got := Triangulate(coords)
	if len(got) != 9 {
		t.Fatalf("got %d indices, want 9", len(got))
	}
}

// triangleArea returns twice the signed area of triangle (a, b, c).
func triangleArea(coords []float64, a, b, c int) float64 {
	return (coords[2*b]-coords[2*a])*(coords[2*c+1]-coords[2*a+1]) -
		(coords[2*b+1]-coords[2*a+1])*(coords[2*c]-coords[2*a])
}
