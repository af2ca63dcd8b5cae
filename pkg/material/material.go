// Package material implements Phong surface materials and the procedural
// patterns that can replace their base color.
package material

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/lights"
)

// Material describes how a surface responds to light. It is a value type:
// each shape holds its own copy.
type Material struct {
	Color           core.Color
	Pattern         Pattern // Optional; overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transmissive
	RefractiveIndex float64
}

// New returns a material with the conventional defaults: white, mostly
// diffuse, opaque.
func New() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Lighting computes the Phong contribution of one light at a surface point.
// The object is needed so patterns can resolve the point through the shape's
// transform chain. When inShadow is set only the ambient term contributes.
func (m *Material) Lighting(light lights.PointLight, object Object, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		color = PatternAtObject(m.Pattern, object, point)
	}

	// Combine surface color with the light's intensity
	effectiveColor := color.Hadamard(light.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		// Reflection points away from the eye
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}

// Equals reports whether two materials have the same parameters. Patterns
// are compared by identity.
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		m.Pattern == other.Pattern &&
		core.FloatEquals(m.Ambient, other.Ambient) &&
		core.FloatEquals(m.Diffuse, other.Diffuse) &&
		core.FloatEquals(m.Specular, other.Specular) &&
		core.FloatEquals(m.Shininess, other.Shininess) &&
		core.FloatEquals(m.Reflective, other.Reflective) &&
		core.FloatEquals(m.Transparency, other.Transparency) &&
		core.FloatEquals(m.RefractiveIndex, other.RefractiveIndex)
}
