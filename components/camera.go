package components

import (
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.OrbitCamera
	// Screen-space offset from shake, applied after projection
	ShakeX, ShakeY float64
}

var Camera = donburi.NewComponentType[CameraData]()
