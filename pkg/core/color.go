package core

// Color is an RGB color with float components. Components are nominally in
// [0, 1] but may exceed 1 during shading; sinks clamp on output.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns the unit color
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors match within Epsilon
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) &&
		FloatEquals(c.G, other.G) &&
		FloatEquals(c.B, other.B)
}
