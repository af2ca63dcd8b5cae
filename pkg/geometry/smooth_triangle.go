package geometry

import "github.com/whitted/raytracer/pkg/core"

// SmoothTriangle is a triangle with per-vertex normals that are blended by
// the hit's barycentric coordinates, giving meshes a curved appearance.
type SmoothTriangle struct {
	shapeBase
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a smooth triangle from three points and their
// vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		shapeBase: newShapeBase(),
		P1:        p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: p2.Subtract(p1),
		E2: p3.Subtract(p1),
	}
}

// LocalIntersect tests the ray against the triangle, recording the
// barycentric coordinates on the intersection for normal interpolation.
func (tr *SmoothTriangle) LocalIntersect(ray core.Ray) Intersections {
	t, u, v, ok := mollerTrumbore(ray, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	return Intersections{NewIntersectionUV(t, tr, u, v)}
}

// LocalNormalAt interpolates the vertex normals by the hit's barycentric
// coordinates. Falls back to the first vertex normal when no hit data is
// available.
func (tr *SmoothTriangle) LocalNormalAt(_ core.Tuple, hit *Intersection) core.Tuple {
	if hit == nil {
		return tr.N1
	}
	return tr.N2.Multiply(hit.U).
		Add(tr.N3.Multiply(hit.V)).
		Add(tr.N1.Multiply(1 - hit.U - hit.V))
}

// Bounds returns the box spanning the three vertices
func (tr *SmoothTriangle) Bounds() BoundingBox {
	box := NewEmptyBoundingBox()
	box.AddPoint(tr.P1)
	box.AddPoint(tr.P2)
	box.AddPoint(tr.P3)
	return box
}
