package geometry

import "github.com/whitted/raytracer/pkg/core"

// Group is a shape whose geometry is an ordered list of child shapes. Its
// bounding box grows incrementally as children are added and is used to cull
// whole subtrees during intersection.
type Group struct {
	shapeBase
	children []Shape
	bounds   BoundingBox
}

// NewGroup creates a new empty group
func NewGroup() *Group {
	return &Group{
		shapeBase: newShapeBase(),
		bounds:    NewEmptyBoundingBox(),
	}
}

// Children returns the group's child shapes in insertion order
func (g *Group) Children() []Shape {
	return g.children
}

// AddChild appends a shape to the group, takes over as its parent, and
// merges its parent-space bounds into the group's box. The box only ever
// grows; Divide moves children without shrinking it, which stays
// conservative and therefore correct.
func (g *Group) AddChild(shape Shape) {
	shape.SetParent(g)
	g.children = append(g.children, shape)
	g.bounds.Merge(ParentSpaceBounds(shape))
}

// LocalIntersect culls against the group's bounding box, then concatenates
// every child's intersections and sorts them once.
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	if !g.bounds.Intersects(ray) {
		return nil
	}

	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt is never meaningful for a group: normals always come from
// the child that was actually hit.
func (g *Group) LocalNormalAt(core.Tuple, *Intersection) core.Tuple {
	return core.NewVector(0, 0, 0)
}

// Bounds returns the accumulated bounds of all children, in group space
func (g *Group) Bounds() BoundingBox {
	return g.bounds
}

// partitionChildren splits the group's bounds in half and pulls out the
// children that fit entirely inside one half. Straddling children stay in
// the group.
func (g *Group) partitionChildren() (left, right []Shape) {
	leftBounds, rightBounds := g.bounds.Split()

	var remaining []Shape
	for _, child := range g.children {
		childBounds := ParentSpaceBounds(child)
		switch {
		case leftBounds.ContainsBox(childBounds):
			left = append(left, child)
		case rightBounds.ContainsBox(childBounds):
			right = append(right, child)
		default:
			remaining = append(remaining, child)
		}
	}
	g.children = remaining
	return left, right
}

// makeSubgroup wraps the given shapes in a new child group. Adding them one
// by one rebuilds the subgroup's bounds from scratch.
func (g *Group) makeSubgroup(shapes []Shape) {
	subgroup := NewGroup()
	for _, shape := range shapes {
		subgroup.AddChild(shape)
	}
	g.AddChild(subgroup)
}

// Divide rewrites the group into a bounding-volume hierarchy: groups holding
// more than threshold children are split along the longest axis of their
// bounds, with the two halves pushed into subgroups. Children that straddle
// the split stay where they are, unaccelerated. The subdivision then recurses
// into every child group and CSG.
func (g *Group) Divide(threshold int) {
	if len(g.children) > threshold {
		left, right := g.partitionChildren()
		if len(left) > 0 && len(right) > 0 {
			g.makeSubgroup(left)
			g.makeSubgroup(right)
		} else {
			// Only one half was populated; put everything back
			for _, shape := range left {
				g.AddChild(shape)
			}
			for _, shape := range right {
				g.AddChild(shape)
			}
		}
	}

	for _, child := range g.children {
		switch c := child.(type) {
		case *Group:
			c.Divide(threshold)
		case *CSG:
			c.Divide(threshold)
		}
	}
}
