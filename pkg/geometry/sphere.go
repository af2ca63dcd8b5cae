package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a new unit sphere
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass
// material, a common building block for refraction scenes and tests.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves the ray-sphere quadratic. A tangent ray yields two
// equal roots rather than one.
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	// Vector from the sphere's center (the origin) to the ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the normal of the unit sphere, which is simply the
// vector from the origin to the point.
func (s *Sphere) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}

// Bounds returns the unit sphere's bounding box
func (s *Sphere) Bounds() BoundingBox {
	return NewBoundingBox(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
