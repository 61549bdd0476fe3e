package systems

import (
	"math"

	"github.com/automoto/dragon-arena/components"
	"github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera orbits and zooms the camera from input, then applies shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	OrbitCamera(&camera.OrbitCamera, input, IsSettingsOpen(e))

	updateScreenShake(cameraEntry, camera)
}

// OrbitCamera applies one frame of orbit input. Mouse drag is ignored while
// the settings panel is open so the panel can be clicked.
func OrbitCamera(cam *gamemath.OrbitCamera, input *components.InputData, panelOpen bool) {
	c := config.Camera

	if input.Dragging && !panelOpen {
		cam.Yaw -= input.DragDX * config.Input.DragSensitivity
		cam.Pitch += input.DragDY * config.Input.DragSensitivity
	}
	if input.Pressed(config.ActionOrbitLeft) {
		cam.Yaw -= c.OrbitSpeed
	}
	if input.Pressed(config.ActionOrbitRight) {
		cam.Yaw += c.OrbitSpeed
	}

	zoom := -input.WheelY
	if input.Pressed(config.ActionZoomIn) {
		zoom--
	}
	if input.Pressed(config.ActionZoomOut) {
		zoom++
	}
	cam.Distance += zoom * c.ZoomStep

	cam.Yaw = gamemath.WrapAngle(cam.Yaw)
	cam.Pitch = gamemath.Clamp(cam.Pitch, c.MinPitch, c.MaxPitch)
	cam.Distance = gamemath.Clamp(cam.Distance, c.MinDistance, c.MaxDistance)
}

// updateScreenShake sets the shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeX, camera.ShakeY = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := math.Min(shake.Intensity*progress, config.ScreenShake.MaxOffset)

	camera.ShakeX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.ShakeY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
