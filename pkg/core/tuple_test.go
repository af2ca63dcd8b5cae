package core

import (
	"math"
	"testing"
)

func TestTuple_PointAndVectorTags(t *testing.T) {
	p := NewPoint(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected %v to be a point", p)
	}

	v := NewVector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Expected %v to be a vector", v)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Tuple
		expected Tuple
	}{
		{
			name:     "adding a vector to a point",
			got:      NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)),
			expected: NewPoint(1, 1, 6),
		},
		{
			name:     "subtracting two points gives a vector",
			got:      NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			expected: NewVector(-2, -4, -6),
		},
		{
			name:     "subtracting a vector from a point",
			got:      NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			expected: NewPoint(-2, -4, -6),
		},
		{
			name:     "negating a vector",
			got:      NewVector(1, -2, 3).Negate(),
			expected: NewVector(-1, 2, -3),
		},
		{
			name:     "scaling a vector",
			got:      NewVector(1, -2, 3).Multiply(3.5),
			expected: NewVector(3.5, -7, 10.5),
		},
		{
			name:     "dividing a vector",
			got:      NewVector(1, -2, 3).Divide(2),
			expected: NewVector(0.5, -1, 1.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	tests := []struct {
		vector   Tuple
		expected float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}

	for _, tt := range tests {
		if got := tt.vector.Magnitude(); !FloatEquals(got, tt.expected) {
			t.Errorf("Magnitude of %v: expected %f, got %f", tt.vector, tt.expected, got)
		}
	}
}

func TestTuple_Normalize(t *testing.T) {
	v := NewVector(4, 0, 0)
	if got := v.Normalize(); !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Expected (1,0,0), got %v", got)
	}

	v = NewVector(1, 2, 3)
	normalized := v.Normalize()
	if !FloatEquals(normalized.Magnitude(), 1) {
		t.Errorf("Expected unit magnitude, got %f", normalized.Magnitude())
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	if got := a.Dot(b); !FloatEquals(got, 20) {
		t.Errorf("Expected dot product 20, got %f", got)
	}

	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Expected cross product (-1,2,-1), got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Expected cross product (1,-2,1), got %v", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Tuple
		normal   Tuple
		expected Tuple
	}{
		{
			name:     "approaching at 45 degrees",
			vector:   NewVector(1, -1, 0),
			normal:   NewVector(0, 1, 0),
			expected: NewVector(1, 1, 0),
		},
		{
			name:     "off a slanted surface",
			vector:   NewVector(0, -1, 0),
			normal:   NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVector(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.Reflect(tt.normal); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
