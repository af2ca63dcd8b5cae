package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// BoundingBox is an axis-aligned box used for culling group and CSG
// traversal and for the median-split subdivision. It is a value type; the
// renderable box shape is Box.
type BoundingBox struct {
	Min core.Tuple
	Max core.Tuple
}

// NewBoundingBox creates a box with the given corners
func NewBoundingBox(min, max core.Tuple) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// NewEmptyBoundingBox creates the empty box: min at +infinity, max at
// -infinity, so that adding any point collapses it onto that point.
func NewEmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: core.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: core.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// AddPoint widens the box to include the given point
func (b *BoundingBox) AddPoint(point core.Tuple) {
	b.Min.X = math.Min(b.Min.X, point.X)
	b.Min.Y = math.Min(b.Min.Y, point.Y)
	b.Min.Z = math.Min(b.Min.Z, point.Z)
	b.Max.X = math.Max(b.Max.X, point.X)
	b.Max.Y = math.Max(b.Max.Y, point.Y)
	b.Max.Z = math.Max(b.Max.Z, point.Z)
}

// Merge widens the box to include another box
func (b *BoundingBox) Merge(other BoundingBox) {
	b.AddPoint(other.Min)
	b.AddPoint(other.Max)
}

// ContainsPoint reports whether the point lies inside the box, boundary
// included
func (b BoundingBox) ContainsPoint(point core.Tuple) bool {
	return b.Min.X <= point.X && point.X <= b.Max.X &&
		b.Min.Y <= point.Y && point.Y <= b.Max.Y &&
		b.Min.Z <= point.Z && point.Z <= b.Max.Z
}

// ContainsBox reports whether the other box lies entirely inside this one
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform returns the box transformed by the given matrix. The transformed
// box may not be axis-aligned in the source frame, so all eight corners are
// transformed and re-accumulated, which is conservative but correct.
func (b BoundingBox) Transform(m core.Matrix) BoundingBox {
	corners := [8]core.Tuple{
		b.Min,
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}

	result := NewEmptyBoundingBox()
	for _, corner := range corners {
		result.AddPoint(m.MultiplyTuple(corner))
	}
	return result
}

// Intersects runs the slab test against the box. Used for culling only, so
// it reports a boolean rather than entry/exit distances.
func (b BoundingBox) Intersects(ray core.Ray) bool {
	_, _, ok := slabIntersect(ray, b.Min, b.Max)
	return ok
}

// Split bisects the box perpendicular to its longest axis, returning the two
// halves. They share the splitting plane; this is a spatial partition, not a
// balance guarantee.
func (b BoundingBox) Split() (left, right BoundingBox) {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z

	greatest := math.Max(dx, math.Max(dy, dz))

	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	switch greatest {
	case dx:
		x0 = x0 + dx/2
		x1 = x0
	case dy:
		y0 = y0 + dy/2
		y1 = y0
	default:
		z0 = z0 + dz/2
		z1 = z0
	}

	midMin := core.NewPoint(x0, y0, z0)
	midMax := core.NewPoint(x1, y1, z1)

	left = NewBoundingBox(b.Min, midMax)
	right = NewBoundingBox(midMin, b.Max)
	return left, right
}
