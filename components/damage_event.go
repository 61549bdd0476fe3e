package components

import "github.com/yohamta/donburi"

// DamageEventData queues hits for the combat system. Amounts are applied in order.
type DamageEventData struct {
	Amounts []int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
