package scene

import (
	"github.com/rtwknd/go-weekend-raytracer/pkg/geometry"
	"github.com/rtwknd/go-weekend-raytracer/pkg/renderer"
)

// Scene bundles a hard-coded world with the camera configuration that
// frames it
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	World        *geometry.List
}

// Build constructs the acceleration structure over the world. It must
// complete before the scene is handed to any render worker; construction
// reorders the world's object slice in place.
func (s *Scene) Build() geometry.Hittable {
	return geometry.NewBVH(s.World)
}
