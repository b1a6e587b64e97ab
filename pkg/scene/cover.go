package scene

import (
	"math/rand"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/geometry"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
)

// NewCoverScene builds the classic final scene: a large ground sphere, a
// grid of randomly placed small spheres (bouncing diffuse, metal, glass)
// and three feature spheres, framed by a defocused camera with motion
// blur. Placement randomness comes from the given seed.
func NewCoverScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing upward between t=0 and t=1
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				target := center.Add(core.NewVec3(0, random.Float64()*0.2, 0))
				world.Add(geometry.NewMovingSphere(center, target, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// Metal
				gray := 0.5 + 0.5*random.Float64()
				albedo := core.NewVec3(gray, gray, gray)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// Glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Name: "cover",
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           1280,
			SamplesPerPixel: 256,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDistance:   10,
			MotionBlur:      true,
			Seed:            seed,
		},
		World: world,
	}
}

// randomColor draws a color with each channel uniform in [0,1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}
