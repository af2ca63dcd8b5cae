// Package scene provides the built-in demo scenes. Each constructor returns
// a fully populated world and camera; construction is the only place
// configuration errors (singular transforms) can occur, and the constructors
// install only fixed, invertible matrices.
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

// mustSetTransform installs a transform that is known to be invertible.
// Scene constructors only build transforms from translations, rotations and
// nonzero scalings, so a failure here is a programming error.
func mustSetTransform(s geometry.Shape, m core.Matrix) {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
}

// NewDefaultScene builds the showcase scene: a checkered floor, a glass
// sphere, a mirror sphere and a matte sphere under a single point light.
func NewDefaultScene(width, height int) (*world.World, *renderer.Camera) {
	w := world.New()

	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.25, 0.25),
	)
	floorMat.Specular = 0.1
	floorMat.Reflective = 0.08
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	glass := geometry.NewGlassSphere()
	mustSetTransform(glass, core.Translation(0, 1, 0))
	glass.Material().Color = core.NewColor(0.05, 0.05, 0.08)
	glass.Material().Diffuse = 0.05
	glass.Material().Ambient = 0.02
	glass.Material().Specular = 1
	glass.Material().Shininess = 300
	glass.Material().Reflective = 0.9
	w.AddShape(glass)

	mirror := geometry.NewSphere()
	mustSetTransform(mirror, core.Translation(-2.3, 0.75, 1.5).Multiply(core.Scaling(0.75, 0.75, 0.75)))
	mirror.Material().Color = core.NewColor(0.1, 0.1, 0.12)
	mirror.Material().Diffuse = 0.3
	mirror.Material().Specular = 1
	mirror.Material().Shininess = 400
	mirror.Material().Reflective = 0.85
	w.AddShape(mirror)

	matte := geometry.NewSphere()
	mustSetTransform(matte, core.Translation(2.1, 0.5, 0.8).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	matte.Material().Color = core.NewColor(0.8, 0.25, 0.2)
	matte.Material().Diffuse = 0.9
	matte.Material().Specular = 0.3
	w.AddShape(matte)

	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 8, -6), core.White()))

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 2.2, -6.5),
		core.NewPoint(0, 0.8, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		panic(err)
	}

	return w, camera
}
