package systems

import (
	"fmt"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/fonts"
	"github.com/automoto/dragon-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudTextOp = &text.DrawOptions{}

// HealthLabel formats the dragon HP line.
func HealthLabel(h *components.HealthData) string {
	return fmt.Sprintf(cfg.HealthBar.Label, h.Current, h.Max)
}

// DrawHUD renders the dragon's health panel in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	dragonEntry, ok := tags.Dragon.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(dragonEntry)
	bar := components.HealthBar.Get(dragonEntry)
	c := cfg.HealthBar

	panelH := c.Padding*3 + c.LabelHeight + c.BarHeight
	vector.FillRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Width+c.Padding*2), float32(panelH),
		c.PanelColor, false)

	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Translate(c.X+c.Padding, c.Y+c.Padding)
	hudTextOp.ColorScale.ScaleWithColor(c.LabelColor)
	text.Draw(screen, HealthLabel(hp), fonts.HUD.Face(), hudTextOp)

	barY := c.Y + c.Padding*2 + c.LabelHeight
	vector.FillRect(screen,
		float32(c.X+c.Padding), float32(barY),
		float32(c.Width), float32(c.BarHeight),
		c.TrackColor, false)
	vector.FillRect(screen,
		float32(c.X+c.Padding), float32(barY),
		float32(c.Width*bar.Displayed), float32(c.BarHeight),
		c.FillColor, false)
}
