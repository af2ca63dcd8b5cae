package material

import (
	"testing"

	"github.com/whitted/raytracer/pkg/core"
)

// scaledObject maps world points through a fixed inverse scaling, standing in
// for a shape scaled by 2 in every axis.
type scaledObject struct{}

func (scaledObject) WorldToObject(point core.Tuple) core.Tuple {
	return core.Scaling(0.5, 0.5, 0.5).MultiplyTuple(point)
}

func TestSolidPattern(t *testing.T) {
	p := NewSolidPattern(core.NewColor(0.2, 0.4, 0.6))

	for _, point := range []core.Tuple{
		core.NewPoint(0, 0, 0),
		core.NewPoint(100, -3, 7),
	} {
		if got := p.ColorAt(point); !got.Equals(core.NewColor(0.2, 0.4, 0.6)) {
			t.Errorf("Expected the solid color at %v, got %v", point, got)
		}
	}
}

func TestStripePattern(t *testing.T) {
	p := NewStripePattern(core.White(), core.Black())

	tests := []struct {
		name  string
		point core.Tuple
		want  core.Color
	}{
		{"constant in y", core.NewPoint(0, 1, 0), core.White()},
		{"constant in y further", core.NewPoint(0, 2, 0), core.White()},
		{"constant in z", core.NewPoint(0, 0, 1), core.White()},
		{"constant in z further", core.NewPoint(0, 0, 2), core.White()},
		{"first stripe", core.NewPoint(0.9, 0, 0), core.White()},
		{"second stripe", core.NewPoint(1, 0, 0), core.Black()},
		{"negative x", core.NewPoint(-0.1, 0, 0), core.Black()},
		{"negative stripe boundary", core.NewPoint(-1.1, 0, 0), core.White()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
				t.Errorf("Expected %v at %v, got %v", tt.want, tt.point, got)
			}
		})
	}
}

func TestGradientPattern(t *testing.T) {
	p := NewGradientPattern(core.White(), core.Black())

	tests := []struct {
		point core.Tuple
		want  core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White()},
		{core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
			t.Errorf("Expected %v at %v, got %v", tt.want, tt.point, got)
		}
	}
}

func TestRingPattern(t *testing.T) {
	p := NewRingPattern(core.White(), core.Black())

	tests := []struct {
		point core.Tuple
		want  core.Color
	}{
		{core.NewPoint(0, 0, 0), core.White()},
		{core.NewPoint(1, 0, 0), core.Black()},
		{core.NewPoint(0, 0, 1), core.Black()},
		// Just past sqrt(2)/2 in both x and z
		{core.NewPoint(0.708, 0, 0.708), core.Black()},
	}

	for _, tt := range tests {
		if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
			t.Errorf("Expected %v at %v, got %v", tt.want, tt.point, got)
		}
	}
}

func TestCheckersPattern(t *testing.T) {
	p := NewCheckersPattern(core.White(), core.Black())

	tests := []struct {
		name  string
		point core.Tuple
		want  core.Color
	}{
		{"origin", core.NewPoint(0, 0, 0), core.White()},
		{"repeats in x", core.NewPoint(0.99, 0, 0), core.White()},
		{"alternates in x", core.NewPoint(1.01, 0, 0), core.Black()},
		{"repeats in y", core.NewPoint(0, 0.99, 0), core.White()},
		{"alternates in y", core.NewPoint(0, 1.01, 0), core.Black()},
		{"repeats in z", core.NewPoint(0, 0, 0.99), core.White()},
		{"alternates in z", core.NewPoint(0, 0, 1.01), core.Black()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ColorAt(tt.point); !got.Equals(tt.want) {
				t.Errorf("Expected %v at %v, got %v", tt.want, tt.point, got)
			}
		})
	}
}

func TestPatternAtObject(t *testing.T) {
	t.Run("object transform", func(t *testing.T) {
		p := NewStripePattern(core.White(), core.Black())
		got := PatternAtObject(p, scaledObject{}, core.NewPoint(1.5, 0, 0))
		if !got.Equals(core.White()) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("pattern transform", func(t *testing.T) {
		p := NewStripePattern(core.White(), core.Black())
		if err := p.SetTransform(core.Scaling(2, 2, 2)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got := PatternAtObject(p, identityObject{}, core.NewPoint(1.5, 0, 0))
		if !got.Equals(core.White()) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("both transforms", func(t *testing.T) {
		p := NewStripePattern(core.White(), core.Black())
		if err := p.SetTransform(core.Translation(0.5, 0, 0)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got := PatternAtObject(p, scaledObject{}, core.NewPoint(2.5, 0, 0))
		if !got.Equals(core.White()) {
			t.Errorf("Expected white, got %v", got)
		}
	})
}

func TestPattern_SetTransform(t *testing.T) {
	p := NewTestPattern()
	if err := p.SetTransform(core.Translation(1, 2, 3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !p.Transform().Equals(core.Translation(1, 2, 3)) {
		t.Error("Expected the transform to be recorded")
	}

	// The cached inverse feeds the lookup
	got := PatternAtObject(p, identityObject{}, core.NewPoint(2, 3, 4))
	if !got.Equals(core.NewColor(1, 1, 1)) {
		t.Errorf("Expected the translated coordinates, got %v", got)
	}
}

func TestPattern_SetTransformSingular(t *testing.T) {
	p := NewTestPattern()
	var singular core.Matrix // All zeros
	if err := p.SetTransform(singular); err == nil {
		t.Fatal("Expected an error for a singular transform")
	}
	if !p.Transform().Equals(core.Identity()) {
		t.Error("Expected the transform to be left unchanged after the error")
	}
}
