package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/geometry"
)

// Sky gradient endpoints: white at the horizon blending to light blue at
// the zenith
var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// rowBand is the private output of one render worker: a contiguous range
// of image rows. Workers never share mutable state; bands are concatenated
// in row order after the join.
type rowBand struct {
	startRow, endRow int // half-open row range [startRow, endRow)
	pixels           []core.Vec3
	primaryRays      int64
}

// Render traces the scene and assembles the final image. Rows are divided
// evenly across the workers with the last worker absorbing the remainder;
// each worker owns an independently seeded sampler and a private row
// buffer. The call blocks until every worker completes.
func (c *Camera) Render(world geometry.Hittable, logger core.Logger) (*Framebuffer, RenderStats) {
	workers := c.workers
	if workers > c.height {
		workers = c.height
	}

	logger.Printf("Rendering %dx%d, %d samples per pixel, depth %d, %d workers\n",
		c.width, c.height, c.samplesPerPixel, c.maxDepth, workers)

	start := time.Now()

	rowsPerWorker := c.height / workers
	bands := make([]*rowBand, workers)
	for i := range bands {
		startRow := i * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if i == workers-1 {
			endRow = c.height
		}
		bands[i] = &rowBand{
			startRow: startRow,
			endRow:   endRow,
			pixels:   make([]core.Vec3, (endRow-startRow)*c.width),
		}
	}

	var wg sync.WaitGroup
	for i, band := range bands {
		wg.Add(1)
		go func(workerID int, band *rowBand) {
			defer wg.Done()
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(c.seed + int64(workerID))))
			c.renderBand(world, band, sampler)
		}(i, band)
	}
	wg.Wait()

	// Fan-in: concatenate the private band buffers in row order
	fb := NewFramebuffer(c.width, c.height)
	var primaryRays int64
	for _, band := range bands {
		copy(fb.pixels[band.startRow*c.width:band.endRow*c.width], band.pixels)
		primaryRays += band.primaryRays
	}

	elapsed := time.Since(start)
	stats := RenderStats{
		TotalPixels: c.width * c.height,
		PrimaryRays: primaryRays,
		Workers:     workers,
		Elapsed:     elapsed,
	}

	logger.Printf("Render completed in %v (%d primary rays)\n", elapsed, primaryRays)

	return fb, stats
}

// renderBand renders the worker's row range into its private buffer
func (c *Camera) renderBand(world geometry.Hittable, band *rowBand, sampler core.Sampler) {
	for j := band.startRow; j < band.endRow; j++ {
		for i := 0; i < c.width; i++ {
			pixelColor := core.Vec3{}
			for sample := 0; sample < c.samplesPerPixel; sample++ {
				ray := c.ray(i, j, sampler)
				pixelColor = pixelColor.Add(c.rayColor(ray, world, sampler))
			}
			band.pixels[(j-band.startRow)*c.width+i] = pixelColor.Multiply(c.pixelSampleScale)
			band.primaryRays += int64(c.samplesPerPixel)
		}
	}
}

// rayColor resolves one sample path iteratively, carrying the accumulated
// attenuation product and a remaining-depth counter instead of recursing.
// The path terminates on depth exhaustion (black), scatter failure (black)
// or a scene miss (sky gradient).
func (c *Camera) rayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := c.maxDepth; ; depth-- {
		if depth <= 0 {
			return core.Vec3{}
		}

		// The lower bound skips self-intersections at the previous
		// bounce's exit point
		hit, isHit := world.Hit(ray, core.Interval{Min: 0.001, Max: math.Inf(1)})
		if !isHit {
			return throughput.MultiplyVec(skyGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// skyGradient blends white at the horizon to light blue at the zenith by
// the ray direction's normalized y component
func skyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}
