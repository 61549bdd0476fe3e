package components

import (
	"github.com/automoto/dragon-arena/assets"
	"github.com/yohamta/donburi"
)

// ModelData points at the loaded model. Billboards carry an Animation too.
type ModelData struct {
	*assets.Model
}

var Model = donburi.NewComponentType[ModelData]()
