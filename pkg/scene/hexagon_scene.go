package scene

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
	"github.com/whitted/raytracer/pkg/lights"
	"github.com/whitted/raytracer/pkg/renderer"
	"github.com/whitted/raytracer/pkg/world"
)

// hexagonCorner builds one corner sphere of the hexagon ring
func hexagonCorner() geometry.Shape {
	corner := geometry.NewSphere()
	mustSetTransform(corner, core.Translation(0, 0, -1).Multiply(core.Scaling(0.25, 0.25, 0.25)))
	return corner
}

// hexagonEdge builds one connecting cylinder of the hexagon ring
func hexagonEdge() geometry.Shape {
	edge := geometry.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	mustSetTransform(edge, core.Translation(0, 0, -1).
		Multiply(core.RotationY(-math.Pi/6)).
		Multiply(core.RotationZ(-math.Pi/2)).
		Multiply(core.Scaling(0.25, 1, 0.25)))
	return edge
}

// hexagonSide groups a corner and an edge
func hexagonSide() *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

// hexagon assembles six rotated sides into a ring. The three-level group
// nesting (hexagon, side, primitive) makes this the standard workout for
// world-to-object coordinate walks.
func hexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		mustSetTransform(side, core.RotationY(float64(n)*math.Pi/3))
		hex.AddChild(side)
	}
	return hex
}

// NewHexagonScene builds a hexagonal ring of spheres and cylinders floating
// over a plain floor.
func NewHexagonScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.New()

	floor := geometry.NewPlane()
	floor.Material().Color = core.NewColor(0.7, 0.7, 0.75)
	floor.Material().Specular = 0.1
	w.AddShape(floor)

	hex := hexagon()
	mustSetTransform(hex, core.Translation(0, 1, 0).Multiply(core.RotationX(-math.Pi/6)))
	for _, side := range hex.Children() {
		for _, part := range side.(*geometry.Group).Children() {
			part.Material().Color = core.NewColor(0.9, 0.6, 0.1)
			part.Material().Specular = 0.8
			part.Material().Shininess = 100
		}
	}
	w.AddShape(hex)

	w.AddLight(lights.NewPointLight(core.NewPoint(-6, 10, -10), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 3, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		panic(err)
	}

	return w, camera
}
