package factory

import (
	"fmt"
	"log"

	"github.com/automoto/dragon-arena/archetypes"
	"github.com/automoto/dragon-arena/assets"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena loads the arena map and builds the whole scene from it. Models
// that fail to load are logged and left out.
func CreateArena(ecs *ecs.ECS) (*donburi.Entry, error) {
	layout, err := assets.LoadArena()
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return BuildArena(ecs, layout), nil
}

// BuildArena populates the world from an already parsed layout.
func BuildArena(ecs *ecs.ECS, layout *leveldata.Arena) *donburi.Entry {
	cell := cfg.Arena.SpaceCellSize
	CreateSpace(ecs, layout.Width, layout.Height, cell, cell)

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{Layout: layout})

	CreateCamera(ecs)
	for _, l := range layout.Lights {
		CreateLight(ecs, l)
	}
	CreateEnvironment(ecs, layout.Environment)
	CreateGround(ecs, layout)

	for _, b := range layout.Bounds {
		CreateWall(ecs, b.X, b.Y, b.W, b.H)
	}

	if p, ok := layout.Model(leveldata.ClassTemple); ok {
		CreateTemple(ecs, p)
	}
	if p, ok := layout.Model(leveldata.ClassDragon); ok {
		CreateDragon(ecs, layout, p)
	}
	if p, ok := layout.Model(leveldata.ClassKnight); ok {
		CreateKnight(ecs, layout, p)
	}
	return arena
}

func CreateLight(ecs *ecs.ECS, l leveldata.LightPlacement) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(light, components.LightData{
		Kind:        l.Kind,
		Color:       l.Color,
		GroundColor: l.GroundColor,
		Intensity:   l.Intensity,
		Position:    l.Position,
	})
	return light
}

// CreateEnvironment loads the sky. Without one the fallback colour is drawn.
func CreateEnvironment(ecs *ecs.ECS, name string) *donburi.Entry {
	env := archetypes.Environment.Spawn(ecs)
	data := components.EnvironmentData{Fallback: cfg.Lighting.FallbackSkyColor}
	if name != "" {
		img, err := assets.LoadEnvironment(name)
		if err != nil {
			log.Printf("failed to load environment %s: %v", name, err)
		} else {
			data.Image = img
		}
	}
	components.Environment.SetValue(env, data)
	return env
}

func CreateGround(ecs *ecs.ECS, layout *leveldata.Arena) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Ground.SetValue(ground, components.GroundData{
		Elevation:     layout.GroundElevation,
		ShadowOpacity: layout.ShadowOpacity,
	})
	return ground
}
