package systems

import (
	"github.com/automoto/dragon-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down flash timers
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration == 0 {
			flash.Amount = 0
		}
	})
}

// TriggerFlash whitens an entity's sprite for a number of frames
func TriggerFlash(entry *donburi.Entry, frames int, amount float32) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{
		Duration: frames,
		Amount:   amount,
	})
}
