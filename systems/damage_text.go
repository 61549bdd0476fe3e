package systems

import (
	"strconv"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/fonts"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDamageText takes the first free slot. It returns false, dropping the
// indicator, when every slot is in use.
func SpawnDamageText(pool *components.DamageTextPoolData, amount int, pos gamemath.Vec3, now int64) bool {
	for i := range pool.Slots {
		slot := &pool.Slots[i]
		if slot.InUse {
			continue
		}
		*slot = components.DamageTextSlot{
			InUse:     true,
			Amount:    amount,
			Text:      strconv.Itoa(amount),
			Position:  pos,
			StartY:    pos.Y,
			CreatedAt: now,
			Opacity:   1,
			Progress:  gween.New(0, 1, float32(cfg.DamageText.LifespanTicks), ease.Linear),
		}
		return true
	}
	return false
}

// UpdateDamageTexts rises and fades every live slot and frees the ones past
// their lifespan.
func UpdateDamageTexts(pool *components.DamageTextPoolData, now int64) {
	lifespan := cfg.DamageText.LifespanTicks
	for i := range pool.Slots {
		slot := &pool.Slots[i]
		if !slot.InUse {
			continue
		}

		age := now - slot.CreatedAt
		if age >= lifespan {
			pool.Slots[i] = components.DamageTextSlot{}
			continue
		}
		if age < 0 {
			age = 0
		}

		progress := float64(age) / float64(lifespan)
		if slot.Progress != nil {
			p, _ := slot.Progress.Set(float32(age))
			progress = float64(p)
		}
		slot.Position.Y = slot.StartY + cfg.DamageText.RiseDistance*progress
		slot.Opacity = 1 - progress
	}
}

// UpdateDamageText runs UpdateDamageTexts on every pool in the world.
func UpdateDamageText(e *ecs.ECS) {
	now := Now(e)
	components.DamageTextPool.Each(e.World, func(entry *donburi.Entry) {
		UpdateDamageTexts(components.DamageTextPool.Get(entry), now)
	})
}

var damageTextOp = &text.DrawOptions{}

// DrawDamageTexts draws live indicators at their projected world position.
func DrawDamageTexts(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	face := fonts.Damage.Face()
	_, glyphHeight := text.Measure("0", face, 0)
	if glyphHeight <= 0 {
		return
	}

	components.DamageTextPool.Each(e.World, func(entry *donburi.Entry) {
		pool := components.DamageTextPool.Get(entry)
		for i := range pool.Slots {
			slot := &pool.Slots[i]
			if !slot.InUse || slot.Opacity <= 0 {
				continue
			}
			p, ok := v.project(slot.Position)
			if !ok {
				continue
			}

			scale := cfg.DamageText.WorldHeight * p.Scale / glyphHeight
			if scale < cfg.DamageText.MinScreenScale {
				scale = cfg.DamageText.MinScreenScale
			}
			w, h := text.Measure(slot.Text, face, 0)

			damageTextOp.GeoM.Reset()
			damageTextOp.ColorScale.Reset()
			damageTextOp.GeoM.Translate(-w/2, -h/2)
			damageTextOp.GeoM.Scale(scale, scale)
			damageTextOp.GeoM.Translate(p.X, p.Y)
			damageTextOp.ColorScale.ScaleWithColor(cfg.DamageText.Color)
			damageTextOp.ColorScale.ScaleAlpha(float32(slot.Opacity))
			text.Draw(screen, slot.Text, face, damageTextOp)
		}
	})
}
