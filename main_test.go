package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		sceneType string
		wantName  string
		wantErr   bool
	}{
		{"cover", "cover", false},
		{"simple", "simple", false},
		{"nonexistent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.sceneType, func(t *testing.T) {
			sc, err := createScene(tt.sceneType, 1)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for scene type %q", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sc.Name != tt.wantName {
				t.Errorf("Expected scene name %q, got %q", tt.wantName, sc.Name)
			}
			if sc.World.Len() == 0 {
				t.Error("Scene world is empty")
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	base := renderer.DefaultCameraConfig()
	base.Width = 640
	base.SamplesPerPixel = 32
	base.MaxDepth = 12

	tests := []struct {
		name                        string
		width, samples, depth       int
		wantWidth, wantSpp, wantMax int
	}{
		{"all defaults kept", 0, 0, -1, 640, 32, 12},
		{"all overridden", 800, 64, 25, 800, 64, 25},
		{"zero depth passes through", 0, 0, 0, 640, 32, 0},
		{"negative width ignored", -5, 0, -1, 640, 32, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyOverrides(base, tt.width, tt.samples, tt.depth)
			if got.Width != tt.wantWidth {
				t.Errorf("Expected width %d, got %d", tt.wantWidth, got.Width)
			}
			if got.SamplesPerPixel != tt.wantSpp {
				t.Errorf("Expected %d samples per pixel, got %d", tt.wantSpp, got.SamplesPerPixel)
			}
			if got.MaxDepth != tt.wantMax {
				t.Errorf("Expected max depth %d, got %d", tt.wantMax, got.MaxDepth)
			}
		})
	}
}

func TestWriteImage(t *testing.T) {
	fb := renderer.NewFramebuffer(2, 2)
	dir := t.TempDir()

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "out.ppm")
		if err := writeImage(fb, path, "ppm"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
			t.Errorf("Unexpected PPM header: %q", string(data))
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "out.png")
		if err := writeImage(fb, path, "png"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open output: %v", err)
		}
		defer file.Close()
		img, err := png.Decode(file)
		if err != nil {
			t.Fatalf("Output is not a valid PNG: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 2 || bounds.Dy() != 2 {
			t.Errorf("Expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		path := filepath.Join(dir, "out.bmp")
		if err := writeImage(fb, path, "bmp"); err == nil {
			t.Fatal("Expected error for unknown format")
		}
	})
}
