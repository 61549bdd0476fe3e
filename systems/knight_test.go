package systems

import (
	"math"
	"testing"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/tags"
	"github.com/solarlune/resolv"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoveKnight(t *testing.T) {
	diag := cfg.Knight.WalkSpeed / math.Sqrt2
	tests := []struct {
		name    string
		intent  MoveIntent
		wantDX  float64
		wantDZ  float64
		wantYaw float64
		clip    cfg.StateID
	}{
		{"forward walks toward -z", MoveIntent{Forward: true}, 0, -cfg.Knight.WalkSpeed, math.Pi, cfg.Walk},
		{"back", MoveIntent{Back: true}, 0, cfg.Knight.WalkSpeed, 0, cfg.Walk},
		{"right", MoveIntent{Right: true}, cfg.Knight.WalkSpeed, 0, math.Pi / 2, cfg.Walk},
		{"left runs", MoveIntent{Left: true, Run: true}, -cfg.Knight.RunSpeed, 0, -math.Pi / 2, cfg.Running},
		{"diagonal keeps speed", MoveIntent{Forward: true, Right: true}, diag, -diag, 3 * math.Pi / 4, cfg.Walk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Walk, cfg.Running, cfg.Attack)

			if !MoveKnight(knight, tt.intent) {
				t.Fatal("Expected the knight to move")
			}
			tr := components.Transform.Get(knight)
			if !near(tr.Position.X, tt.wantDX) || !near(tr.Position.Z, tt.wantDZ) {
				t.Errorf("Expected position (%.3f, %.3f), got (%.3f, %.3f)", tt.wantDX, tt.wantDZ, tr.Position.X, tr.Position.Z)
			}
			if !near(tr.Yaw, tt.wantYaw) {
				t.Errorf("Expected yaw %.3f, got %.3f", tt.wantYaw, tr.Yaw)
			}
			anim := components.Animation.Get(knight)
			if anim.Current != tt.clip || !anim.IsRunning(tt.clip) {
				t.Errorf("Expected clip %v running, got %v", tt.clip, anim.Current)
			}
			if got := components.State.Get(knight).CurrentState; got != tt.clip {
				t.Errorf("Expected state %v, got %v", tt.clip, got)
			}
		})
	}
}

func TestMoveKnightOppositeKeysCancel(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(1, 0, 1), cfg.Idle, cfg.Running)
	components.Transform.Get(knight).Yaw = 0.5

	if MoveKnight(knight, MoveIntent{Left: true, Right: true, Run: true}) {
		t.Error("Expected no movement")
	}
	tr := components.Transform.Get(knight)
	if tr.Position != gamemath.V3(1, 0, 1) || tr.Yaw != 0.5 {
		t.Errorf("Expected knight untouched, got %v yaw %.2f", tr.Position, tr.Yaw)
	}
	if components.Animation.Get(knight).Current != cfg.Idle {
		t.Error("Expected idle clip when not moving")
	}
	if components.Knight.Get(knight).IsRunning {
		t.Error("Expected IsRunning false when not moving")
	}
}

func TestMoveKnightWithoutWalkClipRuns(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Running)

	MoveKnight(knight, MoveIntent{Forward: true})

	if got := components.Animation.Get(knight).Current; got != cfg.Running {
		t.Errorf("Expected running clip, got %v", got)
	}
	if got := components.Transform.Get(knight).Position.Z; !near(got, -cfg.Knight.WalkSpeed) {
		t.Errorf("Expected walk speed, got %.3f", -got)
	}
}

func TestMoveKnightBlockedBySolid(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Running)

	space := resolv.NewSpace(64, 64, 8, 8)
	knightObj := resolv.NewObject(10, 10, 4, 4, tags.ResolvKnight)
	wall := resolv.NewObject(14.1, 0, 8, 64, tags.ResolvSolid)
	space.Add(knightObj, wall)
	knight.AddComponent(components.Object)
	components.Object.SetValue(knight, components.ObjectData{Object: knightObj})

	// Right is blocked, forward is free
	MoveKnight(knight, MoveIntent{Right: true, Forward: true, Run: true})

	tr := components.Transform.Get(knight)
	if tr.Position.X != 0 {
		t.Errorf("Expected x blocked at 0, got %.3f", tr.Position.X)
	}
	if tr.Position.Z >= 0 {
		t.Errorf("Expected z to keep moving forward, got %.3f", tr.Position.Z)
	}
	if !near(knightObj.Y, 10+tr.Position.Z) || knightObj.X != 10 {
		t.Errorf("Expected footprint to follow, got (%.3f, %.3f)", knightObj.X, knightObj.Y)
	}
}

func TestMoveKnightSameCellNotBlocked(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Running)

	// Both share a cell but never overlap
	space := resolv.NewSpace(64, 64, 32, 32)
	knightObj := resolv.NewObject(0, 0, 4, 4, tags.ResolvKnight)
	dragonObj := resolv.NewObject(20, 20, 4, 4, tags.ResolvDragon)
	space.Add(knightObj, dragonObj)
	knight.AddComponent(components.Object)
	components.Object.SetValue(knight, components.ObjectData{Object: knightObj})

	MoveKnight(knight, MoveIntent{Right: true, Run: true})

	if got := components.Transform.Get(knight).Position.X; !near(got, cfg.Knight.RunSpeed) {
		t.Errorf("Expected knight to move %.2f, got %.3f", cfg.Knight.RunSpeed, got)
	}
}

func TestKnightAttack(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Attack)
	dragon := spawnTestDragon(e, gamemath.V3(0, 0, -25), cfg.Dragon.Health)

	damage := KnightAttack(e, knight, dragon)
	if damage < cfg.Combat.MinDamage || damage > cfg.Combat.MaxDamage {
		t.Fatalf("Expected damage in range, got %d", damage)
	}
	if !components.Knight.Get(knight).IsAttacking {
		t.Error("Expected IsAttacking after an attack")
	}
	if got := components.State.Get(knight).CurrentState; got != cfg.Attack {
		t.Errorf("Expected attack state, got %v", got)
	}

	// Still swinging: the next press does nothing
	if again := KnightAttack(e, knight, dragon); again != 0 {
		t.Errorf("Expected no damage mid-swing, got %d", again)
	}

	UpdateCombat(e)
	if got := components.Health.Get(dragon).Current; got != cfg.Dragon.Health-damage {
		t.Errorf("Expected health %d, got %d", cfg.Dragon.Health-damage, got)
	}
}

func TestKnightAttackOutOfRange(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Attack)
	dragon := spawnTestDragon(e, gamemath.V3(0, 0, -40), cfg.Dragon.Health)

	if damage := KnightAttack(e, knight, dragon); damage != 0 {
		t.Errorf("Expected a miss, got %d", damage)
	}
	UpdateCombat(e)

	if got := components.Health.Get(dragon).Current; got != cfg.Dragon.Health {
		t.Errorf("Expected health untouched, got %d", got)
	}
	if dragon.HasComponent(components.DamageEvent) {
		t.Error("Expected no damage event on a miss")
	}
	if !components.Animation.Get(knight).IsRunning(cfg.Attack) {
		t.Error("Expected the swing to play on a miss")
	}
}

func TestKnightAttackWithoutClip(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle)
	dragon := spawnTestDragon(e, gamemath.V3(0, 0, -5), cfg.Dragon.Health)

	if damage := KnightAttack(e, knight, dragon); damage != 0 {
		t.Errorf("Expected no attack without a clip, got %d", damage)
	}
}

func TestUpdateKnightIgnoresMissingKnight(t *testing.T) {
	e := newTestECS()
	spawnTestDragon(e, gamemath.V3(0, 0, 0), cfg.Dragon.Health)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionAttack] = true

	UpdateKnight(e)

	dragon, _ := tags.Dragon.First(e.World)
	if dragon.HasComponent(components.DamageEvent) {
		t.Error("Expected nothing to happen without a knight")
	}
}

func TestHeldAttackSwingsAgainAfterClip(t *testing.T) {
	e := newTestECS()
	knight := spawnTestKnight(e, gamemath.V3(0, 0, 0), cfg.Idle, cfg.Attack)
	dragon := spawnTestDragon(e, gamemath.V3(0, 0, -25), cfg.Dragon.Health)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionAttack] = true

	UpdateKnight(e)
	input.Advance()
	UpdateKnight(e)
	if got := len(components.DamageEvent.Get(dragon).Amounts); got != 1 {
		t.Fatalf("Expected one hit while the clip plays, got %d", got)
	}

	components.Animation.Get(knight).Action(cfg.Attack).Stop()
	input.Advance()
	UpdateKnight(e)
	if got := len(components.DamageEvent.Get(dragon).Amounts); got != 2 {
		t.Errorf("Expected a second hit once the clip ended, got %d", got)
	}
}
