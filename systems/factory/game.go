package factory

import (
	"github.com/automoto/dragon-arena/archetypes"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the per-session singletons on one entity.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.RNG.SetValue(game, components.RNGData{PRNG: gamemath.NewPRNG(cfg.Debug.Seed)})
	components.Outcome.SetValue(game, components.OutcomeData{State: cfg.OutcomeFighting})
	return game
}
