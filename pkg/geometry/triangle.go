package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Triangle is a flat triangle with a single face normal. The edge vectors
// and normal are precomputed at construction.
type Triangle struct {
	shapeBase
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		shapeBase: newShapeBase(),
		P1:        p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// mollerTrumbore runs the Moller-Trumbore intersection test, returning the
// distance and barycentric coordinates of the hit.
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false // Ray parallel to the triangle's plane
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

// LocalIntersect tests the ray against the triangle
func (tr *Triangle) LocalIntersect(ray core.Ray) Intersections {
	t, _, _, ok := mollerTrumbore(ray, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	return Intersections{NewIntersection(t, tr)}
}

// LocalNormalAt returns the precomputed face normal
func (tr *Triangle) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return tr.Normal
}

// Bounds returns the box spanning the three vertices
func (tr *Triangle) Bounds() BoundingBox {
	box := NewEmptyBoundingBox()
	box.AddPoint(tr.P1)
	box.AddPoint(tr.P2)
	box.AddPoint(tr.P3)
	return box
}
