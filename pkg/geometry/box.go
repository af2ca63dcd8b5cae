package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Box is a renderable axis-aligned box with arbitrary corners: the same slab
// test as Cube but parameterized by min/max. Handy for debris like walls and
// for visualizing bounding volumes.
type Box struct {
	shapeBase
	Min core.Tuple
	Max core.Tuple
}

// NewBox creates a box spanning the given corners
func NewBox(min, max core.Tuple) *Box {
	return &Box{shapeBase: newShapeBase(), Min: min, Max: max}
}

// LocalIntersect runs the slab method against the box's own corners
func (b *Box) LocalIntersect(ray core.Ray) Intersections {
	tmin, tmax, ok := slabIntersect(ray, b.Min, b.Max)
	if !ok {
		return nil
	}
	return Intersections{
		NewIntersection(tmin, b),
		NewIntersection(tmax, b),
	}
}

// LocalNormalAt picks the face nearest the point, measuring each coordinate
// relative to the box's center and half-extent so non-unit boxes work.
func (b *Box) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	center := b.Min.Add(b.Max).Multiply(0.5)
	offset := point.Subtract(center)

	// Normalize each component by its half-extent before comparing
	nx := offset.X / math.Max(b.Max.X-center.X, core.Epsilon)
	ny := offset.Y / math.Max(b.Max.Y-center.Y, core.Epsilon)
	nz := offset.Z / math.Max(b.Max.Z-center.Z, core.Epsilon)

	maxC := math.Max(math.Abs(nx), math.Max(math.Abs(ny), math.Abs(nz)))
	switch maxC {
	case math.Abs(nx):
		return core.NewVector(nx, 0, 0)
	case math.Abs(ny):
		return core.NewVector(0, ny, 0)
	default:
		return core.NewVector(0, 0, nz)
	}
}

// Bounds returns the box itself
func (b *Box) Bounds() BoundingBox {
	return NewBoundingBox(b.Min, b.Max)
}
