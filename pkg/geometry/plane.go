package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Plane is the infinite xz plane through the origin
type Plane struct {
	shapeBase
}

// NewPlane creates a new xz plane
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersect returns the single crossing of the xz plane, or nothing for
// a ray parallel to it. A ray lying exactly in the plane also counts as a
// miss: it would intersect everywhere, and "nowhere" is the useful answer.
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant +y normal
func (p *Plane) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// Bounds returns a box that is flat in y and infinite in x and z
func (p *Plane) Bounds() BoundingBox {
	return NewBoundingBox(
		core.NewPoint(math.Inf(-1), 0, math.Inf(-1)),
		core.NewPoint(math.Inf(1), 0, math.Inf(1)),
	)
}
