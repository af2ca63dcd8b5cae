package scene

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
	"github.com/whitted/raytracer/pkg/lights"
	"github.com/whitted/raytracer/pkg/material"
	"github.com/whitted/raytracer/pkg/renderer"
	"github.com/whitted/raytracer/pkg/world"
)

// roundedCube intersects a cube with a sphere, which shaves the cube's
// corners off.
func roundedCube() geometry.Shape {
	cube := geometry.NewCube()
	cube.Material().Color = core.NewColor(0.9, 0.2, 0.2)
	cube.Material().Specular = 0.6

	sphere := geometry.NewSphere()
	mustSetTransform(sphere, core.Scaling(1.38, 1.38, 1.38))
	sphere.Material().Color = core.NewColor(0.9, 0.2, 0.2)
	sphere.Material().Specular = 0.6

	return geometry.NewCSG(geometry.IntersectionOp, cube, sphere)
}

// boredHoles unions three mutually perpendicular cylinders, the drill bits
// subtracted from the rounded cube.
func boredHoles() geometry.Shape {
	color := core.NewColor(0.15, 0.15, 0.2)

	newBit := func(m core.Matrix) geometry.Shape {
		cyl := geometry.NewCylinder()
		cyl.Minimum = -2
		cyl.Maximum = 2
		cyl.Closed = true
		mustSetTransform(cyl, m)
		cyl.Material().Color = color
		cyl.Material().Specular = 0.4
		return cyl
	}

	// A vertical bit plus two rotated into the x and z axes
	bitY := newBit(core.Scaling(0.55, 1, 0.55))
	bitX := newBit(core.RotationZ(math.Pi / 2).Multiply(core.Scaling(0.55, 1, 0.55)))
	bitZ := newBit(core.RotationX(math.Pi / 2).Multiply(core.Scaling(0.55, 1, 0.55)))

	return geometry.NewCSG(geometry.UnionOp, geometry.NewCSG(geometry.UnionOp, bitX, bitY), bitZ)
}

// NewCSGScene builds the classic boolean-geometry demonstration: a rounded
// cube with cylindrical holes bored through each face, over a checkered
// floor.
func NewCSGScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.New()

	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.8, 0.8, 0.8),
		core.NewColor(0.3, 0.3, 0.3),
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	mustSetTransform(floor, core.Translation(0, -1.5, 0))
	w.AddShape(floor)

	solid := geometry.NewCSG(geometry.DifferenceOp, roundedCube(), boredHoles())
	mustSetTransform(solid, core.RotationY(math.Pi/5).Multiply(core.RotationX(-math.Pi/9)))
	w.AddShape(solid)

	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3.5)
	view := core.ViewTransform(
		core.NewPoint(0, 1.5, -6),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		panic(err)
	}

	return w, camera
}
