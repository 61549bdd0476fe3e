package systems

import (
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the tick counter. Runs first so every system in a
// frame sees the same timestamp.
func UpdateClock(ecs *ecs.ECS) {
	getOrCreateClock(ecs).Tick++
}

// Now returns the current tick.
func Now(ecs *ecs.ECS) int64 {
	return getOrCreateClock(ecs).Tick
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// GetOrCreateRNG returns the damage roll generator, seeded from config.Debug.Seed.
func GetOrCreateRNG(ecs *ecs.ECS) *gamemath.PRNG {
	entry, ok := components.RNG.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.RNG))
	}
	rng := components.RNG.Get(entry)
	if rng.PRNG == nil {
		rng.PRNG = gamemath.NewPRNG(cfg.Debug.Seed)
	}
	return rng.PRNG
}
