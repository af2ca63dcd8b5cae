package material

import "github.com/whitted/raytracer/pkg/core"

// Object is the part of a shape the lighting model needs: the ability to map
// a world-space point into the shape's own object space, through however many
// group transforms sit above it.
type Object interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Pattern produces a color for a point in pattern space. Implementations
// carry their own transform; Inverse exposes its cached inverse so the
// pattern transform can be applied after the object transform.
type Pattern interface {
	ColorAt(point core.Tuple) core.Color
	Inverse() core.Matrix
}

// PatternAtObject evaluates a pattern on an object's surface: the world
// point goes through the object's transform chain, then the pattern's own
// transform.
func PatternAtObject(p Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.Inverse().MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}
