// Package leveldata parses the arena layout from a TMX map.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import (
	"image/color"

	"github.com/automoto/dragon-arena/shared/gamemath"
)

// Object group and class names used in the arena map.
const (
	GroupModels = "Models"
	GroupLights = "Lights"
	GroupBounds = "Bounds"

	ClassTemple = "temple"
	ClassDragon = "dragon"
	ClassKnight = "knight"
)

// Arena holds everything the scene bootstrap needs from the map.
// Positions in Models and Lights are world coordinates. Bounds stay in map
// coordinates, which is what the collision space uses.
type Arena struct {
	Width, Height    int
	OriginX, OriginY float64

	GroundElevation float64
	ShadowOpacity   float64
	Environment     string // sky image name, empty for none

	Models []ModelPlacement
	Lights []LightPlacement
	Bounds []Rect
}

// ModelPlacement places one model. Yaw is in radians.
type ModelPlacement struct {
	Class    string
	Position gamemath.Vec3
	Scale    float64
	Yaw      float64
}

type LightKind int

const (
	LightPoint LightKind = iota
	LightAmbient
	LightDirectional
	LightHemisphere
)

func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightHemisphere:
		return "hemisphere"
	}
	return "unknown"
}

type LightPlacement struct {
	Kind        LightKind
	Color       color.RGBA
	GroundColor color.RGBA // hemisphere only
	Intensity   float64
	Position    gamemath.Vec3
}

// Rect is an axis-aligned rectangle on the ground plane.
type Rect struct {
	X, Y, W, H float64
}

// ToWorld converts a map point to world X/Z.
func (a *Arena) ToWorld(mx, my float64) (x, z float64) {
	return mx - a.OriginX, my - a.OriginY
}

// ToMap converts world X/Z to a map point.
func (a *Arena) ToMap(x, z float64) (mx, my float64) {
	return x + a.OriginX, z + a.OriginY
}

// Model returns the first placement of the given class.
func (a *Arena) Model(class string) (ModelPlacement, bool) {
	for _, m := range a.Models {
		if m.Class == class {
			return m, true
		}
	}
	return ModelPlacement{}, false
}
