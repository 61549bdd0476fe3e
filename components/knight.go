package components

import "github.com/yohamta/donburi"

type KnightData struct {
	IsAttacking bool
	IsMoving    bool
	IsRunning   bool
}

var Knight = donburi.NewComponentType[KnightData]()
