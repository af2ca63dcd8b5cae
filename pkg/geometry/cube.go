package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis
type Cube struct {
	shapeBase
}

// NewCube creates a new unit cube
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// checkAxis computes the entry/exit t values for one slab. When the ray is
// parallel to the slab the numerators are scaled to +/-infinity, which makes
// the final min/max comparison reject rays outside the slab.
func checkAxis(origin, direction, min, max float64) (tmin, tmax float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// slabIntersect runs the slab method against an arbitrary axis-aligned box,
// shared by Cube, Box and BoundingBox.
func slabIntersect(ray core.Ray, min, max core.Tuple) (tmin, tmax float64, ok bool) {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, min.X, max.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, min.Y, max.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, min.Z, max.Z)

	tmin = math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax = math.Min(xtmax, math.Min(ytmax, ztmax))

	return tmin, tmax, tmin <= tmax
}

// LocalIntersect runs the slab method against the unit cube
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	tmin, tmax, ok := slabIntersect(ray, core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	if !ok {
		return nil
	}

	return Intersections{
		NewIntersection(tmin, c),
		NewIntersection(tmax, c),
	}
}

// LocalNormalAt picks the face whose coordinate has the largest magnitude
func (c *Cube) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}

// Bounds returns the unit cube's bounding box
func (c *Cube) Bounds() BoundingBox {
	return NewBoundingBox(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
