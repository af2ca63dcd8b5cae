// Package world holds the renderable scene and the recursive Whitted
// shading pipeline: direct Phong lighting with shadow rays, plus reflection
// and refraction traced on an explicit depth budget.
package world

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
	"github.com/whitted/raytracer/pkg/lights"
	"github.com/whitted/raytracer/pkg/material"
)

// World is the intersectable scene: a flat list of top-level shapes (any
// tree structure lives inside groups and CSGs) and the point lights. Once
// rendering starts the world is read-only, so it is safe to share across
// render workers without locking.
type World struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// NewDefault creates the conventional two-sphere test world: a large
// colored sphere with a smaller plain one inside it, lit from the upper
// left. Most shading tests are written against it.
func NewDefault() *World {
	s1 := geometry.NewSphere()
	m := material.New()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	if err := s2.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // Fixed scaling matrix is always invertible
	}

	return &World{
		Shapes: []geometry.Shape{s1, s2},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White()),
		},
	}
}

// AddShape appends a top-level shape to the world
func (w *World) AddShape(s geometry.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// AddLight appends a light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect gathers the ray's intersections with every top-level shape and
// sorts them once, globally, ascending by t.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt traces a ray into the world and returns its color. A miss is
// black. remaining is the recursion budget for reflection and refraction;
// it, not the call stack, bounds the hall-of-mirrors case.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black()
	}

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared hit: per-light Phong terms with
// shadow tests, plus reflected and refracted contributions. A surface that
// is both reflective and transparent blends the two by the Fresnel
// reflectance; otherwise they simply add.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(light, comps.Object, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection ray off a reflective surface.
// Exhausted recursion budget and non-reflective surfaces both contribute
// black; neither is an error.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black()
	}

	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// RefractedColor traces the transmission ray through a transparent surface
// using Snell's law. Total internal reflection contributes black; the
// reflection term picks up the energy via Schlick blending.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black()
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black() // Total internal reflection
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// IsShadowed reports whether anything shadow-casting stands between the
// point and the light. Shapes can opt out of occlusion individually.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	direction := v.Normalize()

	ray := core.NewRay(point, direction)
	for _, x := range w.Intersect(ray) {
		if x.T > 0 && x.T < distance && x.Object.CastsShadow() {
			return true
		}
	}
	return false
}
