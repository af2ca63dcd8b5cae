package geometry

import "sort"

// Intersection records where a ray met a shape. U and V are barycentric
// coordinates, only meaningful for smooth triangle hits. Intersections are
// transient: produced, sorted and consumed within a single trace call.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at distance t on the given shape
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric coordinates
func NewIntersectionUV(t float64, object Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is a list of intersections along one ray
type Intersections []Intersection

// Sort orders the intersections ascending by t. The sort is stable so that
// coincident surfaces keep their insertion order. Compound queries always
// concatenate first and sort once: CSG filtering depends on the global time
// order, not any per-object order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the first intersection with t >= 0, expecting the list to be
// sorted. The second return is false when every intersection lies behind
// the ray origin or the list is empty.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
