package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	PrimaryRays int64         // Camera rays issued (pixels * samples per pixel)
	Workers     int           // Workers the rows were partitioned across
	Elapsed     time.Duration // Wall-clock render time
}
