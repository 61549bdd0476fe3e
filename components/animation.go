package components

import (
	"github.com/automoto/dragon-arena/assets/animations"
	"github.com/automoto/dragon-arena/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a small mixer: one Action per clip, one of them current.
type AnimationData struct {
	Actions map[config.StateID]*animations.Action
	Current config.StateID
}

// Has reports whether the model shipped the clip.
func (a *AnimationData) Has(state config.StateID) bool {
	_, ok := a.Actions[state]
	return ok
}

// Action returns the clip's action or nil.
func (a *AnimationData) Action(state config.StateID) *animations.Action {
	return a.Actions[state]
}

// IsRunning reports whether the clip is playing.
func (a *AnimationData) IsRunning(state config.StateID) bool {
	act := a.Actions[state]
	return act != nil && act.IsRunning()
}

// Play resets the clip, starts it and makes it current. The previous clip
// stops. It returns false when the clip is missing.
func (a *AnimationData) Play(state config.StateID) bool {
	act, ok := a.Actions[state]
	if !ok {
		return false
	}
	if a.Current != state {
		if prev := a.Actions[a.Current]; prev != nil {
			prev.Stop()
		}
	}
	a.Current = state
	act.Reset()
	act.Play()
	return true
}

// Loop switches to a repeating clip without restarting it when it is
// already current and running.
func (a *AnimationData) Loop(state config.StateID) {
	if a.Current == state && a.IsRunning(state) {
		return
	}
	a.Play(state)
}

// CurrentFrame returns the sheet index of the current clip.
func (a *AnimationData) CurrentFrame() (int, bool) {
	act := a.Actions[a.Current]
	if act == nil {
		return 0, false
	}
	return act.Frame(), true
}

var Animation = donburi.NewComponentType[AnimationData]()
