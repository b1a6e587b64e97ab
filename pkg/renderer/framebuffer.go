package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
)

// intensity is the clamp range applied before 8-bit quantization. The
// upper bound of 0.999 keeps the truncated channel below 256.
var intensity = core.NewInterval(0.000, 0.999)

// Framebuffer holds the averaged linear pixel colors of a finished render
// in row-major order
type Framebuffer struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// RGB8 returns the quantized 8-bit channels of pixel (x, y)
func (fb *Framebuffer) RGB8(x, y int) (r, g, b int) {
	c := fb.At(x, y)
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// WritePPM emits the image in the plain-text P3 format: a "P3" line, the
// dimensions, the max channel value 255, then one "r g b" line per pixel
// in row-major order
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	for _, c := range fb.pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ToImage converts the framebuffer to an RGBA image for PNG encoding
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGB8(x, y)
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// quantize maps a linear channel value to [0, 255]: square-root gamma
// correction (gamma 2.0), clamp, then scale by 256 and truncate
func quantize(linear float64) int {
	gamma := linearToGamma(linear)
	return int(256 * intensity.Clamp(gamma))
}

// linearToGamma applies the square-root approximation of gamma 2.0
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
