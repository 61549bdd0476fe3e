package components

import (
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/yohamta/donburi"
)

// OutcomeData tracks whether the fight is still on.
type OutcomeData struct {
	State cfg.OutcomeID
	// Frames since the outcome changed, drives the overlay fade
	Timer   int
	Restart bool
}

var Outcome = donburi.NewComponentType[OutcomeData]()
