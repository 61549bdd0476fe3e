package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines describes the fight state for the overlay.
func DebugLines(e *ecs.ECS) []string {
	lines := []string{fmt.Sprintf("TPS %.1f", ebiten.ActualTPS())}

	knightEntry, hasKnight := tags.Knight.First(e.World)
	dragonEntry, hasDragon := tags.Dragon.First(e.World)

	if hasKnight {
		t := components.Transform.Get(knightEntry)
		state := components.State.Get(knightEntry)
		lines = append(lines,
			fmt.Sprintf("knight %.1f %.1f %.1f yaw %.2f", t.Position.X, t.Position.Y, t.Position.Z, t.Yaw),
			fmt.Sprintf("state %s", state.CurrentState))
	} else {
		lines = append(lines, "knight absent")
	}

	if hasKnight && hasDragon {
		a := components.Transform.Get(knightEntry).Position
		b := components.Transform.Get(dragonEntry).Position
		lines = append(lines, fmt.Sprintf("distance %.1f in range %v",
			gamemath.Distance(a, b), gamemath.WithinRange(a, b, cfg.Combat.HitDistance)))
	}
	if hasDragon {
		pool := components.DamageTextPool.Get(dragonEntry)
		lines = append(lines, fmt.Sprintf("damage text %d/%d", pool.InUse(), pool.Capacity()))
	} else {
		lines = append(lines, "dragon absent")
	}
	return lines
}

// DrawDebug prints the overlay and outlines collision footprints on the ground.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.DebugOverlay {
		return
	}

	drawFootprints(ecs, screen)

	lines := DebugLines(ecs)
	y := screen.Bounds().Dy() - 16*len(lines) - 8
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, y)
}

func drawFootprints(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Layout
	if arena == nil {
		return
	}
	// Walls have no height of their own; outline them where the knight walks
	floorY := 0.0
	if knightEntry, ok := tags.Knight.First(e.World); ok {
		floorY = components.Transform.Get(knightEntry).Position.Y
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		if obj == nil {
			return
		}
		y := floorY
		if entry.HasComponent(components.Transform) {
			y = components.Transform.Get(entry).Position.Y
		}

		x0, z0 := arena.ToWorld(obj.X, obj.Y)
		x1, z1 := arena.ToWorld(obj.X+obj.W, obj.Y+obj.H)
		corners := []gamemath.Vec3{
			gamemath.V3(x0, y, z0), gamemath.V3(x1, y, z0),
			gamemath.V3(x1, y, z1), gamemath.V3(x0, y, z1),
		}

		c := cfg.LightGreen
		if obj.HasTags(tags.ResolvDragon) {
			c = cfg.Red
		}
		for i := range corners {
			a, okA := v.project(corners[i])
			b, okB := v.project(corners[(i+1)%len(corners)])
			if okA && okB {
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
			}
		}
	})
}
