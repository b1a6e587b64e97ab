package renderer

import (
	"math"
	"runtime"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// CameraConfig is the full configuration surface consumed by the renderer
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height, > 0
	Width           int       // Image width in pixels, >= 1
	SamplesPerPixel int       // Rays per pixel, >= 1
	MaxDepth        int       // Maximum ray bounce depth, >= 0
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees; 0 disables depth of field
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
	MotionBlur      bool      // Assign each ray a random time in [0,1)
	Workers         int       // Parallel render workers; 0 selects the CPU count
	Seed            int64     // Base seed for the per-worker generators
}

// DefaultCameraConfig returns a camera at the origin looking down -z with
// the default viewport
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   1,
		Workers:         0,
		Seed:            42,
	}
}

// Camera owns the viewport geometry and the defocus model. It is immutable
// after construction and safely shared across render workers.
type Camera struct {
	width            int
	height           int
	samplesPerPixel  int
	pixelSampleScale float64
	maxDepth         int
	motionBlur       bool
	workers          int
	seed             int64

	center        core.Vec3
	pixel00       core.Vec3
	pixelDeltaU   core.Vec3
	pixelDeltaV   core.Vec3
	defocusAngle  float64
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
}

// NewCamera builds the viewport basis, pixel deltas and defocus disk from
// the configuration
func NewCamera(config CameraConfig) *Camera {
	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Viewport dimensions from the vertical field of view, using the real
	// (integer-rounded) aspect ratio
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	// Orthonormal camera basis: w points opposite the view direction
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan((config.DefocusAngle/2)*math.Pi/180)

	return &Camera{
		width:            config.Width,
		height:           height,
		samplesPerPixel:  config.SamplesPerPixel,
		pixelSampleScale: 1.0 / float64(config.SamplesPerPixel),
		maxDepth:         config.MaxDepth,
		motionBlur:       config.MotionBlur,
		workers:          workers,
		seed:             config.Seed,
		center:           config.LookFrom,
		pixel00:          pixel00,
		pixelDeltaU:      pixelDeltaU,
		pixelDeltaV:      pixelDeltaV,
		defocusAngle:     config.DefocusAngle,
		defocusDiskU:     u.Multiply(defocusRadius),
		defocusDiskV:     v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the derived image height in pixels
func (c *Camera) Height() int { return c.height }

// ray builds a sample ray for pixel (i, j): jittered within the pixel,
// originating on the defocus disk when depth of field is configured, and
// stamped with a random time when motion blur is enabled
func (c *Camera) ray(i, j int, sampler core.Sampler) core.Ray {
	offsetX := sampler.Get1D() - 0.5
	offsetY := sampler.Get1D() - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.SampleInUnitDisk(sampler)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	time := 0.0
	if c.motionBlur {
		time = sampler.Get1D()
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), time)
}
