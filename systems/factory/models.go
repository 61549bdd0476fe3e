package factory

import (
	"log"

	"github.com/automoto/dragon-arena/archetypes"
	"github.com/automoto/dragon-arena/assets"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/automoto/dragon-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func loadModel(key string) *assets.Model {
	model, err := assets.LoadModel(key)
	if err != nil {
		log.Printf("failed to load %s: %v", key, err)
		return nil
	}
	return model
}

func setTransform(entry *donburi.Entry, p leveldata.ModelPlacement) {
	components.Transform.SetValue(entry, components.TransformData{
		Position: p.Position,
		Yaw:      p.Yaw,
		Scale:    p.Scale,
	})
}

// newFootprint creates a square resolv object centred on the placement.
func newFootprint(ecs *ecs.ECS, arena *leveldata.Arena, entry *donburi.Entry, p leveldata.ModelPlacement, size float64, tag string) *resolv.Object {
	mx, my := arena.ToMap(p.Position.X, p.Position.Z)
	obj := resolv.NewObject(mx-size/2, my-size/2, size, size, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}

func CreateTemple(ecs *ecs.ECS, p leveldata.ModelPlacement) *donburi.Entry {
	model := loadModel(cfg.ModelTemple)
	if model == nil {
		return nil
	}

	temple := archetypes.Temple.Spawn(ecs)
	setTransform(temple, p)
	components.Model.SetValue(temple, components.ModelData{Model: model})
	return temple
}

func CreateDragon(ecs *ecs.ECS, arena *leveldata.Arena, p leveldata.ModelPlacement) *donburi.Entry {
	model := loadModel(cfg.ModelDragon)
	if model == nil {
		return nil
	}

	dragon := archetypes.Dragon.Spawn(ecs)
	setTransform(dragon, p)
	components.Model.SetValue(dragon, components.ModelData{Model: model})
	components.Animation.Set(dragon, GenerateAnimations(model))
	newFootprint(ecs, arena, dragon, p, cfg.Dragon.CollisionSize, tags.ResolvDragon)

	components.Health.SetValue(dragon, components.HealthData{
		Current: cfg.Dragon.Health,
		Max:     cfg.Dragon.Health,
	})
	components.HealthBar.SetValue(dragon, components.HealthBarData{
		Displayed: 1,
		Target:    1,
	})
	components.DamageTextPool.SetValue(dragon, components.NewDamageTextPool(cfg.DamageText.PoolSize))

	// Flash stays attached so hits don't move the entity between archetypes
	components.Flash.SetValue(dragon, components.FlashData{})
	return dragon
}

func CreateKnight(ecs *ecs.ECS, arena *leveldata.Arena, p leveldata.ModelPlacement) *donburi.Entry {
	model := loadModel(cfg.ModelKnight)
	if model == nil {
		return nil
	}

	knight := archetypes.Knight.Spawn(ecs)
	setTransform(knight, p)
	components.Model.SetValue(knight, components.ModelData{Model: model})
	components.Animation.Set(knight, GenerateAnimations(model))
	newFootprint(ecs, arena, knight, p, cfg.Knight.CollisionSize, tags.ResolvKnight)

	components.Knight.SetValue(knight, components.KnightData{})
	components.State.SetValue(knight, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	return knight
}
