package tags

import "github.com/yohamta/donburi"

var (
	Knight = donburi.NewTag().SetName("Knight")
	Dragon = donburi.NewTag().SetName("Dragon")
	Temple = donburi.NewTag().SetName("Temple")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for movement blocking
const (
	ResolvSolid  = "solid"
	ResolvKnight = "Knight"
	ResolvDragon = "Dragon"
)
