package components

import (
	"image/color"

	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LightData struct {
	Kind        leveldata.LightKind
	Color       color.RGBA
	GroundColor color.RGBA
	Intensity   float64
	Position    gamemath.Vec3
}

var Light = donburi.NewComponentType[LightData]()

// EnvironmentData is the sky. Image is nil when it failed to load.
type EnvironmentData struct {
	Image    *ebiten.Image
	Fallback color.RGBA
}

var Environment = donburi.NewComponentType[EnvironmentData]()

// GroundData is the invisible plane that catches shadows.
type GroundData struct {
	Elevation     float64
	ShadowOpacity float64
}

var Ground = donburi.NewComponentType[GroundData]()
