package systems

import (
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDragon returns the dragon to idle after a hit and keeps its health
// bar in sync.
func UpdateDragon(e *ecs.ECS) {
	dragonEntry, ok := tags.Dragon.First(e.World)
	if !ok {
		return
	}
	dragon := components.Dragon.Get(dragonEntry)
	anim := components.Animation.Get(dragonEntry)

	if !dragon.Defeated && !anim.IsRunning(cfg.Hit) {
		anim.Loop(cfg.Idle)
	}

	SyncHealthBar(components.HealthBar.Get(dragonEntry), components.Health.Get(dragonEntry), cfg.C.FrameDelta)
}

// SyncHealthBar eases the displayed ratio toward the health ratio over the
// configured transition time.
func SyncHealthBar(bar *components.HealthBarData, health *components.HealthData, dt float32) {
	ratio := health.Ratio()
	if ratio != bar.Target {
		bar.Target = ratio
		bar.Tween = gween.New(float32(bar.Displayed), float32(ratio), cfg.HealthBar.TransitionSecs, ease.OutQuad)
	}
	if bar.Tween == nil {
		bar.Displayed = bar.Target
		return
	}
	v, done := bar.Tween.Update(dt)
	bar.Displayed = float64(v)
	if done {
		bar.Displayed = bar.Target
		bar.Tween = nil
	}
}
