package systems

import (
	"github.com/automoto/dragon-arena/assets/animations"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// testAnimation builds a mixer without sprite sheets.
func testAnimation(states ...cfg.StateID) *components.AnimationData {
	anim := &components.AnimationData{
		Actions: make(map[cfg.StateID]*animations.Action),
		Current: cfg.Idle,
	}
	for _, s := range states {
		switch s {
		case cfg.Attack, cfg.Hit, cfg.Die:
			anim.Actions[s] = animations.NewAction(0, 3, 0.1, true, true)
		default:
			anim.Actions[s] = animations.NewAction(0, 3, 0.1, false, false)
		}
	}
	anim.Play(cfg.Idle)
	return anim
}

func spawnTestDragon(e *ecs.ECS, pos gamemath.Vec3, health int) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(
		tags.Dragon,
		components.Dragon,
		components.Transform,
		components.Animation,
		components.Health,
		components.HealthBar,
		components.DamageTextPool,
		components.Flash,
	))
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Scale: 1})
	components.Animation.Set(entry, testAnimation(cfg.Idle, cfg.Hit, cfg.Die))
	components.Health.SetValue(entry, components.HealthData{Current: health, Max: cfg.Dragon.Health})
	components.HealthBar.SetValue(entry, components.HealthBarData{Displayed: 1, Target: 1})
	components.DamageTextPool.SetValue(entry, components.NewDamageTextPool(cfg.DamageText.PoolSize))
	return entry
}

func spawnTestKnight(e *ecs.ECS, pos gamemath.Vec3, states ...cfg.StateID) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(
		tags.Knight,
		components.Knight,
		components.Transform,
		components.Animation,
		components.State,
	))
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Scale: 1})
	components.Animation.Set(entry, testAnimation(states...))
	components.State.SetValue(entry, components.StateData{CurrentState: cfg.Idle, PreviousState: cfg.StateNone})
	return entry
}
