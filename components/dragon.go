package components

import "github.com/yohamta/donburi"

type DragonData struct {
	Defeated bool
}

var Dragon = donburi.NewComponentType[DragonData]()
