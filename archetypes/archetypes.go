package archetypes

import (
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Light = newArchetype(
		components.Light,
	)
	Environment = newArchetype(
		components.Environment,
	)
	Ground = newArchetype(
		components.Ground,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Temple = newArchetype(
		tags.Temple,
		components.Transform,
		components.Model,
	)
	Dragon = newArchetype(
		tags.Dragon,
		components.Dragon,
		components.Transform,
		components.Model,
		components.Animation,
		components.Object,
		components.Health,
		components.HealthBar,
		components.DamageTextPool,
		components.Flash,
	)
	Knight = newArchetype(
		tags.Knight,
		components.Knight,
		components.Transform,
		components.Model,
		components.Animation,
		components.Object,
		components.State,
	)
	// Game holds the per-session singletons
	Game = newArchetype(
		components.Clock,
		components.RNG,
		components.Input,
		components.Outcome,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(all, cs...)...,
	))
	return e
}
