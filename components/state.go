package components

import (
	"github.com/automoto/dragon-arena/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set changes state and restarts the timer. It reports whether the state changed.
func (s *StateData) Set(state config.StateID) bool {
	if s.CurrentState == state {
		s.StateTimer++
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()
