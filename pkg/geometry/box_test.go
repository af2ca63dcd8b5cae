package geometry

import (
	"testing"

	"github.com/whitted/raytracer/pkg/core"
)

func TestBox_LocalIntersect(t *testing.T) {
	box := NewBox(core.NewPoint(-1, 0, -1), core.NewPoint(3, 2, 1))

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
		hit       bool
	}{
		{"through the center", core.NewPoint(1, 1, -5), core.NewVector(0, 0, 1), 4, 6, true},
		{"along x", core.NewPoint(-5, 1, 0), core.NewVector(1, 0, 0), 4, 8, true},
		{"from inside", core.NewPoint(1, 1, 0), core.NewVector(0, 1, 0), -1, 1, true},
		{"above the box", core.NewPoint(1, 5, -5), core.NewVector(0, 0, 1), 0, 0, false},
		{"pointing away", core.NewPoint(1, 1, -5), core.NewVector(0, 0, -1), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			xs := box.LocalIntersect(ray)
			if !tt.hit {
				if len(xs) != 0 {
					t.Fatalf("Expected a miss, got %v", xs)
				}
				return
			}
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if !core.FloatEquals(xs[0].T, tt.t1) || !core.FloatEquals(xs[1].T, tt.t2) {
				t.Errorf("Expected t=%v,%v, got %v,%v", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestBox_LocalNormalAt(t *testing.T) {
	box := NewBox(core.NewPoint(-1, 0, -1), core.NewPoint(3, 2, 1))

	tests := []struct {
		name   string
		point  core.Tuple
		normal core.Tuple
	}{
		{"+x face", core.NewPoint(3, 1, 0), core.NewVector(1, 0, 0)},
		{"-x face", core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
		{"+y face", core.NewPoint(1, 2, 0), core.NewVector(0, 1, 0)},
		{"-y face", core.NewPoint(1, 0, 0), core.NewVector(0, -1, 0)},
		{"+z face", core.NewPoint(1, 1, 1), core.NewVector(0, 0, 1)},
		{"-z face", core.NewPoint(1, 1, -1), core.NewVector(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := box.LocalNormalAt(tt.point, nil)
			if !n.Equals(tt.normal) {
				t.Errorf("Expected normal %v, got %v", tt.normal, n)
			}
		})
	}
}

func TestBox_Bounds(t *testing.T) {
	box := NewBox(core.NewPoint(-2, -3, -4), core.NewPoint(5, 6, 7))
	bounds := box.Bounds()

	if !bounds.Min.Equals(core.NewPoint(-2, -3, -4)) || !bounds.Max.Equals(core.NewPoint(5, 6, 7)) {
		t.Errorf("Expected the box's own corners, got %v..%v", bounds.Min, bounds.Max)
	}
}
