package systems

import (
	"image/color"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateOutcome creates the outcome system. Restart rebuilds the arena
// through the scene changer.
func NewUpdateOutcome(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		outcome := GetOrCreateOutcome(e)
		if outcome.State != cfg.OutcomeFighting {
			outcome.Timer++
		}

		if getOrCreateInput(e).JustPressed(cfg.ActionRestart) {
			outcome.Restart = true
		}
		if outcome.Restart && sceneChanger != nil {
			sceneChanger.ChangeScene(createArenaScene())
		}
	}
}

var outcomeTextOp = &text.DrawOptions{}

// DrawOutcome fades in the victory overlay
func DrawOutcome(e *ecs.ECS, screen *ebiten.Image) {
	outcome := GetOrCreateOutcome(e)
	if outcome.State != cfg.OutcomeVictory {
		return
	}

	fade := float32(1)
	if cfg.Outcome.FadeFrames > 0 && outcome.Timer < cfg.Outcome.FadeFrames {
		fade = float32(outcome.Timer) / float32(cfg.Outcome.FadeFrames)
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.Outcome.OverlayColor
	overlay.A = uint8(float32(overlay.A) * fade)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	drawCentered(screen, cfg.Outcome.Title, fonts.Title.Face(), width/2, height/2-24, cfg.Outcome.TitleColor, fade)
	drawCentered(screen, cfg.Outcome.Hint, fonts.HUD.Face(), width/2, height/2+24, cfg.Outcome.HintColor, fade)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float32) {
	w, h := text.Measure(s, face, 0)
	outcomeTextOp.GeoM.Reset()
	outcomeTextOp.ColorScale.Reset()
	outcomeTextOp.GeoM.Translate(x-w/2, y-h/2)
	outcomeTextOp.ColorScale.ScaleWithColor(clr)
	outcomeTextOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, outcomeTextOp)
}

// GetOrCreateOutcome returns the singleton Outcome component, creating if needed
func GetOrCreateOutcome(e *ecs.ECS) *components.OutcomeData {
	entry, ok := components.Outcome.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Outcome))
	}
	return components.Outcome.Get(entry)
}
