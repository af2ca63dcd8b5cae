package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Cylinder is the unit-radius cylinder around the y axis, by default
// infinite in both directions and open at the ends.
type Cylinder struct {
	shapeBase
	Minimum float64 // Lower y bound, exclusive
	Maximum float64 // Upper y bound, exclusive
	Closed  bool    // Whether the ends are capped
}

// NewCylinder creates a new infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect intersects the lateral surface via a quadratic in x and z,
// truncates the hits to the y range, and then tests the caps.
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can only hit caps
	if a >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, NewIntersection(t0, c))
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, NewIntersection(t1, c))
		}
	}

	xs = c.intersectCaps(ray, xs)
	return xs
}

// checkCap reports whether the ray at t lies within the given cap radius of
// the y axis
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	// Caps only matter for a closed cylinder that the ray could cross
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}

	return xs
}

// LocalNormalAt distinguishes the caps from the lateral surface by the
// square of the radial distance.
func (c *Cylinder) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}

// Bounds returns the cylinder's bounding box; infinite in y when untruncated
func (c *Cylinder) Bounds() BoundingBox {
	return NewBoundingBox(
		core.NewPoint(-1, c.Minimum, -1),
		core.NewPoint(1, c.Maximum, 1),
	)
}
