package factory

import (
	"github.com/automoto/dragon-arena/archetypes"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	t := cfg.Camera.Target
	components.Camera.Set(camera, &components.CameraData{
		OrbitCamera: gamemath.OrbitCamera{
			Target:   gamemath.V3(t[0], t[1], t[2]),
			Yaw:      cfg.Camera.Yaw,
			Pitch:    cfg.Camera.Pitch,
			Distance: cfg.Camera.Distance,
			FOV:      cfg.Camera.FOV,
		},
	})
	return camera
}
