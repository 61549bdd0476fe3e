package factory

import (
	"github.com/automoto/dragon-arena/assets"
	"github.com/automoto/dragon-arena/assets/animations"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
)

// GenerateAnimations builds the mixer for a loaded billboard model. Only
// clips whose sheets were found get an action. Idle starts playing.
func GenerateAnimations(model *assets.Model) *components.AnimationData {
	def := model.Def
	animData := &components.AnimationData{
		Actions: make(map[cfg.StateID]*animations.Action, len(model.Sheets)),
		Current: cfg.Idle,
	}

	for state := range model.Sheets {
		clip := def.Clips[state]
		animData.Actions[state] = animations.NewAction(clip.First, clip.Last, clip.Speed, clip.Loop == cfg.LoopOnce, clip.ClampWhenFinished)

		// Warm the model's frame cache
		for i := clip.First; i <= clip.Last; i++ {
			model.Frame(state, i)
		}
	}

	animData.Play(cfg.Idle)
	return animData
}
