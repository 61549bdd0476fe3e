package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the world layer: sky, shadows, models and damage texts.
	Default ecs.LayerID = iota
	// HUD is drawn on top of the world.
	HUD
)
