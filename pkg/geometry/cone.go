package geometry

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Cone is the unit double-napped cone around the y axis: the surface where
// x^2 + z^2 = y^2, apex at the origin, by default infinite and open.
type Cone struct {
	shapeBase
	Minimum float64 // Lower y bound, exclusive
	Maximum float64 // Upper y bound, exclusive
	Closed  bool    // Whether the ends are capped
}

// NewCone creates a new infinite open double cone
func NewCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect intersects the cone walls. Unlike the cylinder, the
// quadratic coefficient can vanish while the linear one does not; that is a
// ray parallel to one nappe, which still crosses the other exactly once.
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Parallel to both nappes: only caps can be hit
	case math.Abs(a) < core.Epsilon:
		// One linear root
		t := -cc / (2 * b)
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, NewIntersection(t, c))
		}
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			break
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := o.Y + t0*d.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, NewIntersection(t0, c))
		}
		y1 := o.Y + t1*d.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, NewIntersection(t1, c))
		}
	}

	xs = c.intersectCaps(ray, xs)
	return xs
}

func (c *Cone) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// A cone's cap radius equals the cap's |y|
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, NewIntersection(t, c))
	}

	return xs
}

// LocalNormalAt returns the wall or cap normal. The wall's y component has
// the magnitude of the radial distance, pointing away from the apex.
func (c *Cone) LocalNormalAt(point core.Tuple, _ *Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < point.Y*point.Y && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < point.Y*point.Y && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}

// Bounds returns the cone's bounding box. The radius at each truncation
// plane equals its |y|, so the box spans the larger of the two.
func (c *Cone) Bounds() BoundingBox {
	limit := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return NewBoundingBox(
		core.NewPoint(-limit, c.Minimum, -limit),
		core.NewPoint(limit, c.Maximum, limit),
	)
}
