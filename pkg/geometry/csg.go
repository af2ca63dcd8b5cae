package geometry

import (
	"fmt"

	"github.com/whitted/raytracer/pkg/core"
)

// Operation selects how a CSG combines its two operands
type Operation int

const (
	// UnionOp keeps the surface of both solids, minus overlap interiors
	UnionOp Operation = iota
	// IntersectionOp keeps only surface inside the other solid
	IntersectionOp
	// DifferenceOp keeps the left solid minus the right solid
	DifferenceOp
)

// String returns the operation's name
func (op Operation) String() string {
	switch op {
	case UnionOp:
		return "union"
	case IntersectionOp:
		return "intersection"
	case DifferenceOp:
		return "difference"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// CSG combines exactly two shapes with a boolean operation, keeping or
// discarding their surface crossings by walking the globally sorted
// intersection list.
type CSG struct {
	shapeBase
	operation Operation
	left      Shape
	right     Shape
	bounds    BoundingBox
}

// NewCSG creates a boolean composite of two shapes, taking over as their
// parent. The composite's bounds merge both children's parent-space bounds.
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{
		shapeBase: newShapeBase(),
		operation: op,
		left:      left,
		right:     right,
		bounds:    NewEmptyBoundingBox(),
	}
	left.SetParent(c)
	right.SetParent(c)
	c.bounds.Merge(ParentSpaceBounds(left))
	c.bounds.Merge(ParentSpaceBounds(right))
	return c
}

// Operation returns the boolean operation
func (c *CSG) Operation() Operation {
	return c.operation
}

// Left returns the left operand
func (c *CSG) Left() Shape {
	return c.left
}

// Right returns the right operand
func (c *CSG) Right() Shape {
	return c.right
}

// IntersectionAllowed decides whether a surface crossing belongs to the
// composite's surface. lhit says whether the crossed surface belongs to the
// left operand; inLeft and inRight say whether the ray is currently inside
// each operand.
func IntersectionAllowed(op Operation, lhit, inLeft, inRight bool) bool {
	switch op {
	case UnionOp:
		return (lhit && !inRight) || (!lhit && !inLeft)
	case IntersectionOp:
		return (lhit && inRight) || (!lhit && inLeft)
	case DifferenceOp:
		return (lhit && !inRight) || (!lhit && inLeft)
	default:
		return false
	}
}

// FilterIntersections walks a time-sorted intersection list, tracking which
// operand the ray is currently inside, and keeps only the crossings that lie
// on the composite's surface. Every surface is assumed to toggle its solid
// exactly once per crossing; tangent or degenerate surfaces violate that and
// may filter incorrectly.
func (c *CSG) FilterIntersections(xs Intersections) Intersections {
	inLeft := false
	inRight := false

	var result Intersections
	for _, x := range xs {
		lhit := Includes(c.left, x.Object)

		if IntersectionAllowed(c.operation, lhit, inLeft, inRight) {
			result = append(result, x)
		}

		if lhit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return result
}

// LocalIntersect culls against the merged bounds, gathers both operands'
// intersections in global time order, and filters them.
func (c *CSG) LocalIntersect(ray core.Ray) Intersections {
	if !c.bounds.Intersects(ray) {
		return nil
	}

	xs := Intersect(c.left, ray)
	xs = append(xs, Intersect(c.right, ray)...)
	xs.Sort()

	return c.FilterIntersections(xs)
}

// LocalNormalAt is never meaningful for a CSG: normals come from the operand
// surface that was hit.
func (c *CSG) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 0, 0)
}

// Bounds returns the merged bounds of both operands, in CSG space
func (c *CSG) Bounds() BoundingBox {
	return c.bounds
}

// Divide recurses the bounding-volume subdivision into both operands
func (c *CSG) Divide(threshold int) {
	switch l := c.left.(type) {
	case *Group:
		l.Divide(threshold)
	case *CSG:
		l.Divide(threshold)
	}
	switch r := c.right.(type) {
	case *Group:
		r.Divide(threshold)
	case *CSG:
		r.Divide(threshold)
	}
}
