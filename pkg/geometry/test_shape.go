package geometry

import "github.com/whitted/raytracer/pkg/core"

// TestShape is a probe shape for exercising the dispatch and transform
// machinery: it records the object-space ray it was asked to intersect and
// reports the queried point back as its normal.
type TestShape struct {
	shapeBase
	SavedRay core.Ray
}

// NewTestShape creates a new test shape
func NewTestShape() *TestShape {
	return &TestShape{shapeBase: newShapeBase()}
}

// LocalIntersect records the ray and reports no intersections
func (s *TestShape) LocalIntersect(ray core.Ray) Intersections {
	s.SavedRay = ray
	return nil
}

// LocalNormalAt echoes the point's coordinates as a vector
func (s *TestShape) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}

// Bounds returns the unit box
func (s *TestShape) Bounds() BoundingBox {
	return NewBoundingBox(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
