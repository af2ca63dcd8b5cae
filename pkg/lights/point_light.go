// Package lights provides the light sources the shading pipeline samples.
// The engine is a Whitted tracer: lights are ideal points with no area, so a
// surface point is either fully lit or fully shadowed by each light.
package lights

import "github.com/whitted/raytracer/pkg/core"

// PointLight is a light source at a single position with no size
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
