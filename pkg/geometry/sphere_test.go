package geometry

import (
	"math"
	"testing"

	"github.com/rtwknd/go-weekend-raytracer/pkg/core"
	"github.com/rtwknd/go-weekend-raytracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_DeadCenterRoots(t *testing.T) {
	// A ray aimed dead-center at a sphere at distance d intersects at
	// exactly d-r and d+r
	tests := []struct {
		name     string
		distance float64
		radius   float64
	}{
		{"unit sphere at 5", 5.0, 1.0},
		{"small sphere at 2", 2.0, 0.5},
		{"large sphere at 100", 100.0, 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, -tt.distance), tt.radius, testMaterial())
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

			hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-(tt.distance-tt.radius)) > 1e-6 {
				t.Errorf("Near root: expected %f, got %f", tt.distance-tt.radius, hit.T)
			}

			// Excluding the near root returns the far root
			hit, isHit = sphere.Hit(ray, core.NewInterval(tt.distance, math.Inf(1)))
			if !isHit {
				t.Fatal("Expected far-root hit, but got miss")
			}
			if math.Abs(hit.T-(tt.distance+tt.radius)) > 1e-6 {
				t.Errorf("Far root: expected %f, got %f", tt.distance+tt.radius, hit.T)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutwardNormalConvention(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// The normal stays outward even for a back-face hit; only
			// FrontFace records which side the ray came from
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
				t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
			}
		})
	}
}

func TestSphere_Hit_IntervalIsOpen(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Roots are exactly 1 and 3; an interval ending on a root excludes it
	if _, isHit := sphere.Hit(ray, core.NewInterval(0.001, 1.0)); isHit {
		t.Error("Root at the interval's upper bound should be excluded")
	}
	if _, isHit := sphere.Hit(ray, core.NewInterval(3.0, math.Inf(1))); isHit {
		t.Error("Root at the interval's lower bound should be excluded")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial())

	expected := core.NewAABBFromPoints(core.NewVec3(0.5, 1.5, 2.5), core.NewVec3(1.5, 2.5, 3.5))
	if sphere.BoundingBox() != expected {
		t.Errorf("Expected box %+v, got %+v", expected, sphere.BoundingBox())
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0.5, testMaterial())

	// The center interpolates linearly between the endpoints
	if got := sphere.Center(0); !got.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Center(0): expected origin, got %v", got)
	}
	if got := sphere.Center(0.5); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Center(0.5): expected (1,0,0), got %v", got)
	}
	if got := sphere.Center(1); !got.Equals(core.NewVec3(2, 0, 0)) {
		t.Errorf("Center(1): expected (2,0,0), got %v", got)
	}

	// The bounding box spans both endpoint positions
	expected := core.NewAABBFromPoints(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(2.5, 0.5, 0.5))
	if sphere.BoundingBox() != expected {
		t.Errorf("Expected box %+v, got %+v", expected, sphere.BoundingBox())
	}

	// A ray at time 1 sees the sphere at its target position
	ray := core.NewRayAt(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 1.0)
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit at the t=1 position")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}

	// The same ray at time 0 misses: the sphere has not moved yet
	ray = core.NewRayAt(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1), 0.0)
	if _, isHit := sphere.Hit(ray, core.NewInterval(0.001, math.Inf(1))); isHit {
		t.Error("Expected miss at the t=0 position")
	}
}

func TestNewSphere_NegativeRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative radius")
		}
	}()
	NewSphere(core.NewVec3(0, 0, 0), -1.0, testMaterial())
}
