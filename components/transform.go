package components

import (
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the world. Yaw is the facing around the
// vertical axis and Scale multiplies the model's size.
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()
