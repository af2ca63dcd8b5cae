// Package renderer turns a world into pixels: a transform-based camera, a
// float-color canvas with PPM and image sinks, and a concurrent scanline
// renderer.
package renderer

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
)

// Camera maps canvas pixels to world-space rays. All fields are fixed for
// the duration of a render; the only mutator is SetTransform.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	halfWidth   float64
	halfHeight  float64
	pixelSize   float64
	transform   core.Matrix
	inverse     core.Matrix
}

// NewCamera creates a camera for a canvas of hsize x vsize pixels with the
// given horizontal-or-vertical field of view in radians.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	// The image plane sits one unit in front of the eye; the field of view
	// spans its wider dimension.
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int {
	return c.vsize
}

// FieldOfView returns the camera's field of view in radians
func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

// PixelSize returns the world-space size of one pixel on the image plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform installs the view transform, caching its inverse. Returns an
// error for a singular matrix.
func (c *Camera) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// RayForPixel returns the world-space ray through the center of the given
// pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	// Offsets from the canvas edge to the pixel's center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates: +x is left because the camera
	// looks down -z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	// The canvas sits at z = -1 in camera space; transform it and the eye
	// into world space and aim between them.
	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
