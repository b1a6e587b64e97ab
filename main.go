package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
	"github.com/rtwknd/go-weekend-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'simple'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", -1, "Maximum bounce depth (-1 = scene default; 0 renders black)")
	workers := flag.Int("workers", 0, "Render workers (0 = CPU count)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	output := flag.String("output", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover  - The book-cover scene: random spheres with motion blur and depth of field")
		fmt.Println("  simple - Three material spheres on a ground sphere")
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sc, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := applyOverrides(sc.CameraConfig, *width, *samples, *depth)
	config.Workers = *workers
	config.Seed = *seed

	world := sc.Build()
	camera := renderer.NewCamera(config)

	fb, stats := camera.Render(world, renderer.NewDefaultLogger())
	fmt.Printf("Rendered %d pixels with %d workers in %v\n", stats.TotalPixels, stats.Workers, stats.Elapsed)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", sc.Name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	}

	if err := writeImage(fb, filename, *format); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// applyOverrides layers CLI values over the scene's camera defaults. Width
// and samples treat 0 as "keep the scene default"; depth uses -1 for that
// so a zero-bounce render stays expressible.
func applyOverrides(config renderer.CameraConfig, width, samples, depth int) renderer.CameraConfig {
	if width > 0 {
		config.Width = width
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth >= 0 {
		config.MaxDepth = depth
	}
	return config
}

// createScene builds a scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(seed), nil
	case "simple":
		return scene.NewSimpleScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// writeImage saves the framebuffer in the requested format
func writeImage(fb *renderer.Framebuffer, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "ppm":
		return fb.WritePPM(file)
	case "png":
		return png.Encode(file, fb.ToImage())
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}
