package geometry

import (
	"testing"

	"github.com/whitted/raytracer/pkg/core"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectedT float64
		expectHit bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"empty list", nil, 0, false},
		{"lowest nonnegative wins", []float64{5, 7, -3, 2}, 2, true},
		{"boundary t=0 counts as a hit", []float64{-1, 0, 3}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for _, tv := range tt.ts {
				xs = append(xs, NewIntersection(tv, s))
			}
			xs.Sort()

			hit, ok := xs.Hit()
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if ok && !core.FloatEquals(hit.T, tt.expectedT) {
				t.Errorf("Expected hit at t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestIntersections_Sort_IsStable(t *testing.T) {
	a := NewSphere()
	b := NewSphere()

	// Two intersections at the same t must keep their insertion order
	xs := Intersections{
		NewIntersection(2, a),
		NewIntersection(1, a),
		NewIntersection(1, b),
	}
	xs.Sort()

	if xs[0].Object != a || xs[1].Object != b {
		t.Error("Expected coincident intersections to keep insertion order")
	}
	if xs[2].T != 2 {
		t.Errorf("Expected the largest t last, got %f", xs[2].T)
	}
}
