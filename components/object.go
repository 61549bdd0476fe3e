package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint on the ground plane. The resolv space
// uses arena map coordinates: X is world X and Y is world Z, both shifted by
// the map origin.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space for the arena.
var Space = donburi.NewComponentType[resolv.Space]()
