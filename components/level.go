package components

import (
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Layout *leveldata.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
