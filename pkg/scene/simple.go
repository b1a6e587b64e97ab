package scene

import (
	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/geometry"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
)

// NewSimpleScene builds a small three-material demo: a matte center
// sphere, a glass sphere on the left, a fuzzy metal sphere on the right,
// all resting on a large ground sphere. Useful for quick renders and as
// the preview server's default.
func NewSimpleScene() *Scene {
	world := geometry.NewList()

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right))

	config := renderer.DefaultCameraConfig()
	config.SamplesPerPixel = 100
	config.MaxDepth = 50

	return &Scene{
		Name:         "simple",
		CameraConfig: config,
		World:        world,
	}
}
