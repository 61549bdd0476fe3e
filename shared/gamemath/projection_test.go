package gamemath

import (
	"math"
	"testing"
)

func testCamera() OrbitCamera {
	return OrbitCamera{
		Target:   V3(0, 0, 0),
		Yaw:      0,
		Pitch:    math.Pi / 6,
		Distance: 50,
		FOV:      math.Pi / 3,
	}
}

func TestProjectTargetIsScreenCenter(t *testing.T) {
	cam := testCamera()
	p, ok := cam.Project(cam.Target, 640, 360)
	if !ok {
		t.Fatal("Expected target to be visible")
	}
	if math.Abs(p.X-320) > 1e-6 || math.Abs(p.Y-180) > 1e-6 {
		t.Errorf("Expected (320, 180), got (%v, %v)", p.X, p.Y)
	}
	if math.Abs(p.Depth-50) > 1e-6 {
		t.Errorf("Expected depth 50, got %v", p.Depth)
	}
}

func TestProjectOrientation(t *testing.T) {
	cam := testCamera()

	right, _ := cam.Project(V3(10, 0, 0), 640, 360)
	if right.X <= 320 {
		t.Errorf("Expected +X to project right of centre, got %v", right.X)
	}

	above, _ := cam.Project(V3(0, 10, 0), 640, 360)
	if above.Y >= 180 {
		t.Errorf("Expected +Y to project above centre, got %v", above.Y)
	}

	near, _ := cam.Project(V3(0, 0, 20), 640, 360)
	far, _ := cam.Project(V3(0, 0, -20), 640, 360)
	if near.Scale <= far.Scale {
		t.Errorf("Expected nearer points to be larger: near %v far %v", near.Scale, far.Scale)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := testCamera()
	behind := cam.Eye().Add(cam.Eye().Sub(cam.Target))
	if _, ok := cam.Project(behind, 640, 360); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

func TestFacesScreenLeft(t *testing.T) {
	cam := testCamera()
	if !cam.FacesScreenLeft(-math.Pi / 2) {
		t.Error("Expected -X facing to look left")
	}
	if cam.FacesScreenLeft(math.Pi / 2) {
		t.Error("Expected +X facing to look right")
	}

	cam.Yaw = math.Pi
	if cam.FacesScreenLeft(-math.Pi / 2) {
		t.Error("Expected -X facing to look right once the camera orbits to the other side")
	}
}
