package core

import "math"

// Epsilon is the tolerance used for all floating-point comparisons in the
// engine. It also sets the over/under-point offset that keeps secondary rays
// from re-hitting the surface they originate on.
const Epsilon = 1e-4

// FloatEquals reports whether two floats are within Epsilon of each other.
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous coordinate: W==1 marks a point, W==0 a vector.
// The W tag decides whether the affine row of a matrix applies; callers are
// responsible for keeping it consistent.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point tuple (W=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple (W=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}
	}
	return t.Divide(magnitude)
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. Only meaningful for
// vectors; the result is always a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns this vector reflected about the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether two tuples match componentwise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}
