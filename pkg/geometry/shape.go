// Package geometry implements the intersectable shape tree: primitive
// quadrics and polygons, axis-aligned bounds, groups with bounding-volume
// subdivision, and constructive solid geometry composites.
//
// Every shape intersects rays in its own canonical object space (unit sphere
// at the origin, cube spanning [-1,1]^3, and so on); placement in the scene
// comes from a transform matrix whose inverse and inverse-transpose are
// cached when it is installed.
package geometry

import (
	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/material"
)

// Shape is an object that rays can intersect. Concrete shapes embed
// shapeBase for the shared transform/material state and supply the two
// object-space routines LocalIntersect and LocalNormalAt.
//
// Shape identity is pointer identity: two Shape values refer to the same
// object exactly when they compare equal.
type Shape interface {
	Transform() core.Matrix
	SetTransform(m core.Matrix) error
	Inverse() core.Matrix
	InverseTranspose() core.Matrix
	Material() *material.Material
	SetMaterial(m material.Material)
	CastsShadow() bool
	SetCastsShadow(casts bool)
	Parent() Shape
	SetParent(parent Shape)
	WorldToObject(point core.Tuple) core.Tuple
	NormalToWorld(normal core.Tuple) core.Tuple

	// LocalIntersect intersects a ray already transformed into the shape's
	// object space.
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the object-space normal at an object-space
	// point. The hit carries barycentric coordinates for smooth triangles
	// and may be nil for shapes that do not need it.
	LocalNormalAt(point core.Tuple, hit *Intersection) core.Tuple
	// Bounds returns the shape's bounding box in its own object space.
	Bounds() BoundingBox
}

// shapeBase carries the state every shape shares. The parent reference is
// non-owning and is only walked upward for coordinate conversion; children
// are attached to exactly one parent, so the tree is acyclic by construction.
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	castsShadow      bool
	parent           Shape
}

func newShapeBase() shapeBase {
	identity := core.Identity()
	return shapeBase{
		transform:        identity,
		inverse:          identity,
		inverseTranspose: identity,
		material:         material.New(),
		castsShadow:      true,
	}
}

// Transform returns the shape's transform
func (b *shapeBase) Transform() core.Matrix {
	return b.transform
}

// SetTransform installs a new transform, caching its inverse and
// inverse-transpose. Returns an error for a singular matrix; in that case
// the previous transform is kept.
func (b *shapeBase) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	b.inverseTranspose = inverse.Transpose()
	return nil
}

// Inverse returns the cached inverse transform
func (b *shapeBase) Inverse() core.Matrix {
	return b.inverse
}

// InverseTranspose returns the cached inverse-transpose, used for normals
func (b *shapeBase) InverseTranspose() core.Matrix {
	return b.inverseTranspose
}

// Material returns a pointer to the shape's material for in-place tweaks
func (b *shapeBase) Material() *material.Material {
	return &b.material
}

// SetMaterial replaces the shape's material
func (b *shapeBase) SetMaterial(m material.Material) {
	b.material = m
}

// CastsShadow reports whether the shape occludes shadow rays
func (b *shapeBase) CastsShadow() bool {
	return b.castsShadow
}

// SetCastsShadow lets individual shapes opt out of shadow casting
func (b *shapeBase) SetCastsShadow(casts bool) {
	b.castsShadow = casts
}

// Parent returns the enclosing group or CSG, or nil at the root
func (b *shapeBase) Parent() Shape {
	return b.parent
}

// SetParent records the enclosing shape. Called by Group.AddChild and
// NewCSG; not intended for other callers.
func (b *shapeBase) SetParent(parent Shape) {
	b.parent = parent
}

// WorldToObject converts a world-space point into this shape's object space,
// applying each ancestor's inverse transform from the root down.
func (b *shapeBase) WorldToObject(point core.Tuple) core.Tuple {
	if b.parent != nil {
		point = b.parent.WorldToObject(point)
	}
	return b.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space, applying
// each ancestor's inverse-transpose from this shape up to the root.
func (b *shapeBase) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = b.inverseTranspose.MultiplyTuple(normal)
	// The inverse-transpose can smear the translation row into W
	normal.W = 0
	normal = normal.Normalize()

	if b.parent != nil {
		normal = b.parent.NormalToWorld(normal)
	}
	return normal
}

// Intersect transforms the ray into the shape's object space and dispatches
// to its local intersection routine.
func Intersect(s Shape, ray core.Ray) Intersections {
	localRay := ray.Transform(s.Inverse())
	return s.LocalIntersect(localRay)
}

// NormalAt returns the world-space surface normal at a world-space point,
// walking the shape's ancestry in both directions: inverses inward for the
// point, inverse-transposes outward for the normal.
func NormalAt(s Shape, worldPoint core.Tuple, hit *Intersection) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint, hit)
	return s.NormalToWorld(localNormal)
}

// ParentSpaceBounds returns the shape's bounding box transformed into its
// parent's space.
func ParentSpaceBounds(s Shape) BoundingBox {
	return s.Bounds().Transform(s.Transform())
}

// Includes reports whether target is reachable from s: through children for
// groups, through both operands for CSGs, and by identity for primitives.
func Includes(s, target Shape) bool {
	switch v := s.(type) {
	case *Group:
		for _, child := range v.Children() {
			if Includes(child, target) {
				return true
			}
		}
		return false
	case *CSG:
		return Includes(v.Left(), target) || Includes(v.Right(), target)
	default:
		return s == target
	}
}
