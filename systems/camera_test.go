package systems

import (
	"math"
	"testing"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
)

func defaultOrbit() gamemath.OrbitCamera {
	return gamemath.OrbitCamera{
		Yaw:      cfg.Camera.Yaw,
		Pitch:    cfg.Camera.Pitch,
		Distance: cfg.Camera.Distance,
		FOV:      cfg.Camera.FOV,
	}
}

func TestOrbitCameraClamps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(in *components.InputData)
		check func(t *testing.T, cam gamemath.OrbitCamera)
	}{
		{
			name: "drag up stops at max pitch",
			setup: func(in *components.InputData) {
				in.Dragging = true
				in.DragDY = 10000
			},
			check: func(t *testing.T, cam gamemath.OrbitCamera) {
				if cam.Pitch != cfg.Camera.MaxPitch {
					t.Errorf("Expected pitch %.2f, got %.2f", cfg.Camera.MaxPitch, cam.Pitch)
				}
			},
		},
		{
			name: "drag down stops at min pitch",
			setup: func(in *components.InputData) {
				in.Dragging = true
				in.DragDY = -10000
			},
			check: func(t *testing.T, cam gamemath.OrbitCamera) {
				if cam.Pitch != cfg.Camera.MinPitch {
					t.Errorf("Expected pitch %.2f, got %.2f", cfg.Camera.MinPitch, cam.Pitch)
				}
			},
		},
		{
			name: "wheel in stops at min distance",
			setup: func(in *components.InputData) {
				in.WheelY = 1000
			},
			check: func(t *testing.T, cam gamemath.OrbitCamera) {
				if cam.Distance != cfg.Camera.MinDistance {
					t.Errorf("Expected distance %.1f, got %.1f", cfg.Camera.MinDistance, cam.Distance)
				}
			},
		},
		{
			name: "zoom out key",
			setup: func(in *components.InputData) {
				in.Current[cfg.ActionZoomOut] = true
			},
			check: func(t *testing.T, cam gamemath.OrbitCamera) {
				want := cfg.Camera.Distance + cfg.Camera.ZoomStep
				if cam.Distance != want {
					t.Errorf("Expected distance %.1f, got %.1f", want, cam.Distance)
				}
			},
		},
		{
			name: "orbit key turns and wraps",
			setup: func(in *components.InputData) {
				in.Current[cfg.ActionOrbitRight] = true
			},
			check: func(t *testing.T, cam gamemath.OrbitCamera) {
				if math.Abs(cam.Yaw-cfg.Camera.OrbitSpeed) > 1e-9 {
					t.Errorf("Expected yaw %.3f, got %.3f", cfg.Camera.OrbitSpeed, cam.Yaw)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := defaultOrbit()
			in := &components.InputData{}
			tt.setup(in)
			OrbitCamera(&cam, in, false)
			tt.check(t, cam)
		})
	}
}

func TestOrbitCameraYawStaysWrapped(t *testing.T) {
	cam := defaultOrbit()
	in := &components.InputData{}
	in.Current[cfg.ActionOrbitLeft] = true

	for i := 0; i < 1000; i++ {
		OrbitCamera(&cam, in, false)
		if cam.Yaw <= -math.Pi || cam.Yaw > math.Pi {
			t.Fatalf("Expected yaw in (-pi, pi], got %.3f", cam.Yaw)
		}
	}
}

func TestOrbitCameraIgnoresDragUnderPanel(t *testing.T) {
	cam := defaultOrbit()
	in := &components.InputData{Dragging: true, DragDX: 50, DragDY: 50}

	OrbitCamera(&cam, in, true)

	if cam.Yaw != cfg.Camera.Yaw || cam.Pitch != cfg.Camera.Pitch {
		t.Errorf("Expected camera unchanged, got yaw %.3f pitch %.3f", cam.Yaw, cam.Pitch)
	}
}

func TestScreenShakeDecaysAndEnds(t *testing.T) {
	e := newTestECS()
	cameraEntry := e.World.Entry(e.World.Create(components.Camera))
	components.Camera.Set(cameraEntry, &components.CameraData{OrbitCamera: defaultOrbit()})

	TriggerScreenShake(e, 100, 4)
	for i := 0; i < 4; i++ {
		UpdateCamera(e)
		camera := components.Camera.Get(cameraEntry)
		if math.Abs(camera.ShakeX) > cfg.ScreenShake.MaxOffset || math.Abs(camera.ShakeY) > cfg.ScreenShake.MaxOffset {
			t.Fatalf("Expected shake capped at %.1f, got (%.2f, %.2f)", cfg.ScreenShake.MaxOffset, camera.ShakeX, camera.ShakeY)
		}
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Error("Expected shake to be removed when done")
	}

	UpdateCamera(e)
	camera := components.Camera.Get(cameraEntry)
	if camera.ShakeX != 0 || camera.ShakeY != 0 {
		t.Errorf("Expected no offset after shake, got (%.2f, %.2f)", camera.ShakeX, camera.ShakeY)
	}
}
