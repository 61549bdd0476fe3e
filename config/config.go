package config

import (
	"image/color"
	"math"
)

// KnightConfig contains all knight-related configuration values
type KnightConfig struct {
	// Movement (world units per frame)
	WalkSpeed float64
	RunSpeed  float64

	// Footprint used for movement blocking (world units)
	CollisionSize float64
}

// DragonConfig contains dragon configuration values
type DragonConfig struct {
	Health        int
	CollisionSize float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Knight melee reach, measured between world positions
	HitDistance float64

	// Damage roll, inclusive
	MinDamage int
	MaxDamage int

	// Feedback on hit
	HitFlashFrames int
	HitShake       float64
	HitShakeFrames int
}

// DamageTextConfig contains the floating damage indicator configuration
type DamageTextConfig struct {
	PoolSize       int
	LifespanTicks  int64   // frames before a slot is recycled
	SpawnOffsetY   float64 // above the defender's origin
	RiseDistance   float64 // total rise over the lifespan
	Color          color.RGBA
	WorldHeight    float64 // glyph height in world units
	MinScreenScale float64
}

// HealthBarConfig mirrors the dragon HP panel in the top-left corner
type HealthBarConfig struct {
	X, Y           float64
	Width          float64
	Padding        float64
	BarHeight      float64
	LabelHeight    float64
	TransitionSecs float32
	PanelColor     color.RGBA
	TrackColor     color.RGBA
	FillColor      color.RGBA
	LabelColor     color.RGBA
	Label          string // format: current, max
}

// CameraConfig contains orbit camera configuration values
type CameraConfig struct {
	Target      [3]float64
	Yaw         float64
	Pitch       float64
	Distance    float64
	FOV         float64
	MinPitch    float64
	MaxPitch    float64
	MinDistance float64
	MaxDistance float64
	OrbitSpeed  float64 // radians per frame for keyboard orbit
	ZoomStep    float64 // distance per wheel notch / per frame of zoom key
}

// LightingConfig contains the sprite brightness model
type LightingConfig struct {
	PointLightRange float64
	MinBrightness   float64
	MaxBrightness   float64
	// Scales the summed light so the default rig lands near 1.0
	Exposure         float64
	ShadowColor      color.RGBA
	FallbackSkyColor color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	MaxOffset float64
}

// OutcomeConfig contains the victory overlay configuration
type OutcomeConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	Hint         string
	FadeFrames   int
}

// ArenaConfig points at the arena map
type ArenaConfig struct {
	MapPath       string
	SpaceCellSize int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	// Frame delta fed to animations and tweens (seconds)
	FrameDelta float32
}

// Global configuration instances
var C *Config
var Knight KnightConfig
var Dragon DragonConfig
var Combat CombatConfig
var DamageText DamageTextConfig
var HealthBar HealthBarConfig
var Camera CameraConfig
var Lighting LightingConfig
var ScreenShake ScreenShakeConfig
var Outcome OutcomeConfig
var Arena ArenaConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool  // Show the debug overlay from the start
	Seed    int64 // Damage roll seed (0 = time based)
	Muted   bool
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:      960,
		Height:     540,
		TPS:        60,
		FrameDelta: 1.0 / 60.0,
	}

	Knight = KnightConfig{
		WalkSpeed:     0.2,
		RunSpeed:      0.4,
		CollisionSize: 4,
	}

	Dragon = DragonConfig{
		Health:        1000,
		CollisionSize: 10,
	}

	Combat = CombatConfig{
		HitDistance:    30,
		MinDamage:      50,
		MaxDamage:      150,
		HitFlashFrames: 6,
		HitShake:       3,
		HitShakeFrames: 8,
	}

	DamageText = DamageTextConfig{
		PoolSize:       10,
		LifespanTicks:  60, // 1000 ms at 60 TPS
		SpawnOffsetY:   5,
		RiseDistance:   3,
		Color:          Red,
		WorldHeight:    2.5,
		MinScreenScale: 0.5,
	}

	HealthBar = HealthBarConfig{
		X:              20,
		Y:              20,
		Width:          200,
		Padding:        5,
		BarHeight:      20,
		LabelHeight:    18,
		TransitionSecs: 0.3,
		PanelColor:     color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255},
		TrackColor:     color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255},
		FillColor:      Red,
		LabelColor:     White,
		Label:          "Dragon HP: %d/%d",
	}

	Camera = CameraConfig{
		Target:      [3]float64{0, -14, 15},
		Yaw:         0,
		Pitch:       0.45,
		Distance:    70,
		FOV:         75 * math.Pi / 180,
		MinPitch:    0.15,
		MaxPitch:    1.4,
		MinDistance: 20,
		MaxDistance: 160,
		OrbitSpeed:  0.03,
		ZoomStep:    4,
	}

	Lighting = LightingConfig{
		PointLightRange:  100,
		MinBrightness:    0.2,
		MaxBrightness:    1.6,
		Exposure:         0.4,
		ShadowColor:      color.RGBA{R: 0, G: 0, B: 0, A: 255}, // opacity comes from the ground
		FallbackSkyColor: color.RGBA{R: 0x1d, G: 0x26, B: 0x3b, A: 255},
	}

	ScreenShake = ScreenShakeConfig{
		MaxOffset: 6,
	}

	Outcome = OutcomeConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightYellow,
		HintColor:    White,
		Title:        "The dragon is defeated!",
		Hint:         "Press R to fight again",
		FadeFrames:   45,
	}

	Arena = ArenaConfig{
		MapPath:       "levels/arena.tmx",
		SpaceCellSize: 8,
	}

	Debug = DebugConfig{
		Overlay: false,
		Seed:    0,
		Muted:   false,
	}
}
