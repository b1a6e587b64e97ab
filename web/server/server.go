// Package server exposes the renderer over HTTP for quick previews.
// Rendering stays all-or-nothing: each request runs one full render and
// returns the finished image.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
	"github.com/rtwknd/go-weekend-raytracer/pkg/scene"
)

// Server handles preview render requests
type Server struct {
	port int
}

// NewServer creates a new preview server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Start registers the handlers and blocks serving requests
func (s *Server) Start() error {
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a scene with query-parameter overrides and returns
// the image as PNG. Parameters: scene, width, samples, depth, seed.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "simple"
	}
	seed := intParam(query.Get("seed"), time.Now().UnixNano())

	var sc *scene.Scene
	switch sceneName {
	case "simple":
		sc = scene.NewSimpleScene()
	case "cover":
		sc = scene.NewCoverScene(seed)
	default:
		http.Error(w, fmt.Sprintf("unknown scene: %q", sceneName), http.StatusBadRequest)
		return
	}

	config := sc.CameraConfig
	config.Seed = seed
	// Preview defaults: keep requests fast unless overridden
	config.Width = int(intParam(query.Get("width"), 400))
	config.SamplesPerPixel = int(intParam(query.Get("samples"), 16))
	config.MaxDepth = int(intParam(query.Get("depth"), 20))

	camera := renderer.NewCamera(config)
	fb, stats := camera.Render(sc.Build(), renderer.NewDefaultLogger())
	log.Printf("Rendered %s (%dx%d) in %v", sceneName, fb.Width, fb.Height, stats.Elapsed)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, fb.ToImage()); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// intParam parses an integer query parameter, falling back to def
func intParam(value string, def int64) int64 {
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
