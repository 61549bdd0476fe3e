package systems

import (
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every playing clip by one frame delta.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		for _, act := range anim.Actions {
			act.Update(cfg.C.FrameDelta)
		}
	})
}
