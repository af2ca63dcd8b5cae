package material

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// basePattern holds the transform state shared by every pattern. The inverse
// is computed once in SetTransform and reused on every lookup.
type basePattern struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern's transform
func (b *basePattern) Transform() core.Matrix {
	return b.transform
}

// SetTransform installs a new transform, caching its inverse. Returns an
// error for a singular matrix.
func (b *basePattern) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	return nil
}

// Inverse returns the cached inverse transform
func (b *basePattern) Inverse() core.Matrix {
	return b.inverse
}

// SolidPattern returns the same color everywhere
type SolidPattern struct {
	basePattern
	Color core.Color
}

// NewSolidPattern creates a pattern of a single color
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: color}
}

// ColorAt returns the pattern's color regardless of position
func (p *SolidPattern) ColorAt(core.Tuple) core.Color {
	return p.Color
}

// StripePattern alternates two colors along the x axis
type StripePattern struct {
	basePattern
	A, B core.Color
}

// NewStripePattern creates a stripe pattern of two colors
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A on even unit intervals of x, B on odd ones
func (p *StripePattern) ColorAt(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A at x=0 to B at x=1
type GradientPattern struct {
	basePattern
	A, B core.Color
}

// NewGradientPattern creates a linear gradient between two colors
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt linearly interpolates between A and B by the fractional distance
// along x
func (p *GradientPattern) ColorAt(point core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings in the xz plane
type RingPattern struct {
	basePattern
	A, B core.Color
}

// NewRingPattern creates a ring pattern of two colors
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt alternates by the integer radial distance from the y axis
func (p *RingPattern) ColorAt(point core.Tuple) core.Color {
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(distance))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern alternates two colors in a 3-D checkerboard
type CheckersPattern struct {
	basePattern
	A, B core.Color
}

// NewCheckersPattern creates a 3-D checker pattern of two colors
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt alternates by the parity of the summed floor coordinates
func (p *CheckersPattern) ColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}

// TestPattern echoes the pattern-space coordinates as a color. Useless for
// rendering, invaluable for verifying transform chains in tests.
type TestPattern struct {
	basePattern
}

// NewTestPattern creates a coordinate-echo pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{basePattern: newBasePattern()}
}

// ColorAt returns the point's coordinates as an RGB triple
func (p *TestPattern) ColorAt(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}
