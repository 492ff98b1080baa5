package formats

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTriangulateFan(t *testing.T) {
	tests := []struct {
		name    string
		polygon []uint32
		want    []uint32
	}{
		{"triangle", []uint32{1, 2, 3}, []uint32{0, 1, 2}},
		{"quad", []uint32{1, 2, 3, 4}, []uint32{0, 1, 2, 0, 2, 3}},
		{"pentagon", []uint32{5, 4, 3, 2, 1}, []uint32{4, 3, 2, 4, 2, 1, 4, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TriangulateFan(tt.polygon)
			if err != nil {
				t.Fatalf("TriangulateFan failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangulateFanDegenerate(t *testing.T) {
	for _, polygon := range [][]uint32{nil, {1}, {1, 2}} {
		if _, err := TriangulateFan(polygon); !errors.Is(err, ErrDegeneratePolygon) {
			t.Errorf("TriangulateFan(%v): expected ErrDegeneratePolygon, got %v", polygon, err)
		}
	}
}

// Fan triangles of a convex polygon cover exactly its area.
func TestTriangulateFanArea(t *testing.T) {
	for n := 3; n <= 24; n++ {
		xs := make([]float64, n)
		ys := make([]float64, n)
		polygon := make([]uint32, n)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			// Stretched to keep the polygon convex but irregular.
			xs[i] = 3 * math.Cos(angle)
			ys[i] = 1.5 * math.Sin(angle)
			polygon[i] = uint32(i + 1)
		}

		tris, err := TriangulateFan(polygon)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(tris) != 3*(n-2) {
			t.Fatalf("n=%d: expected %d triangles, got %d", n, n-2, len(tris)/3)
		}

		var want float64
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			want += xs[i]*ys[j] - xs[j]*ys[i]
		}
		want = math.Abs(want) / 2

		var got float64
		for i := 0; i < len(tris); i += 3 {
			a, b, c := tris[i], tris[i+1], tris[i+2]
			got += math.Abs((xs[b]-xs[a])*(ys[c]-ys[a])-(xs[c]-xs[a])*(ys[b]-ys[a])) / 2
		}

		if math.Abs(got-want) > 1e-9 {
			t.Errorf("n=%d: triangle area %f, polygon area %f", n, got, want)
		}
	}
}
