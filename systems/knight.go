package systems

import (
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// MoveIntent is one frame of movement input.
type MoveIntent struct {
	Left, Right, Forward, Back bool
	Run                        bool
}

// UpdateKnight moves the knight and starts attacks. Nothing is read while
// the knight is absent.
func UpdateKnight(e *ecs.ECS) {
	knightEntry, ok := tags.Knight.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	knight := components.Knight.Get(knightEntry)
	anim := components.Animation.Get(knightEntry)
	if knight.IsAttacking {
		if act := anim.Action(cfg.Attack); act == nil || act.Finished() || !act.IsRunning() {
			knight.IsAttacking = false
		}
	}

	MoveKnight(knightEntry, MoveIntent{
		Left:    input.Pressed(cfg.ActionMoveLeft),
		Right:   input.Pressed(cfg.ActionMoveRight),
		Forward: input.Pressed(cfg.ActionMoveForward),
		Back:    input.Pressed(cfg.ActionMoveBack),
		Run:     input.Pressed(cfg.ActionRun),
	})

	// Holding the key swings again once the previous swing ends
	if input.Pressed(cfg.ActionAttack) {
		dragonEntry, _ := tags.Dragon.First(e.World)
		KnightAttack(e, knightEntry, dragonEntry)
	}
}

// MoveKnight applies one frame of movement. Pressed directions are summed so
// opposite keys cancel and diagonals keep the same speed. Each axis is
// blocked separately by solids and the dragon's body.
func MoveKnight(entry *donburi.Entry, intent MoveIntent) bool {
	knight := components.Knight.Get(entry)
	transform := components.Transform.Get(entry)
	anim := components.Animation.Get(entry)
	state := components.State.Get(entry)

	dx, dz, ok := gamemath.MoveDirection(intent.Left, intent.Right, intent.Forward, intent.Back)
	if !ok {
		knight.IsMoving = false
		knight.IsRunning = false
		if !knight.IsAttacking {
			anim.Loop(cfg.Idle)
			state.Set(cfg.Idle)
		}
		return false
	}

	speed := cfg.Knight.WalkSpeed
	if intent.Run {
		speed = cfg.Knight.RunSpeed
	}
	step := dmath.Vec2{X: dx * speed, Y: dz * speed}

	transform.Yaw = gamemath.FacingYaw(dx, dz)
	step = blockMovement(entry, step)
	transform.Position.X += step.X
	transform.Position.Z += step.Y

	knight.IsMoving = true
	knight.IsRunning = intent.Run
	if !knight.IsAttacking {
		clip := cfg.Running
		if !intent.Run && anim.Has(cfg.Walk) {
			clip = cfg.Walk
		}
		anim.Loop(clip)
		state.Set(clip)
	}
	return true
}

// blockMovement zeroes the parts of step that would run into a solid and
// moves the collision footprint by what is left.
func blockMovement(entry *donburi.Entry, step dmath.Vec2) dmath.Vec2 {
	if !entry.HasComponent(components.Object) {
		return step
	}
	obj := components.Object.Get(entry).Object
	if obj == nil || obj.Space == nil {
		return step
	}

	if step.X != 0 {
		if blocked(obj, step.X, 0) {
			step.X = 0
		}
		obj.X += step.X
	}
	if step.Y != 0 {
		if blocked(obj, 0, step.Y) {
			step.Y = 0
		}
		obj.Y += step.Y
	}
	obj.Update()
	return step
}

// blocked reports whether obj moved by dx, dy would overlap a solid or the
// dragon. Check only returns objects sharing cells, so boxes are compared too.
func blocked(obj *resolv.Object, dx, dy float64) bool {
	check := obj.Check(dx, dy, tags.ResolvSolid, tags.ResolvDragon)
	if check == nil {
		return false
	}
	x, y := obj.X+dx, obj.Y+dy
	for _, other := range check.Objects {
		if x < other.X+other.W && other.X < x+obj.W &&
			y < other.Y+other.H && other.Y < y+obj.H {
			return true
		}
	}
	return false
}

// KnightAttack starts the attack clip and resolves the hit right away. It
// does nothing while a previous attack is still playing or when the model
// has no attack clip. It returns the damage dealt, 0 on a miss.
func KnightAttack(e *ecs.ECS, knightEntry, dragonEntry *donburi.Entry) int {
	knight := components.Knight.Get(knightEntry)
	anim := components.Animation.Get(knightEntry)
	if !anim.Has(cfg.Attack) || anim.IsRunning(cfg.Attack) {
		return 0
	}

	anim.Play(cfg.Attack)
	knight.IsAttacking = true
	components.State.Get(knightEntry).Set(cfg.Attack)
	PlaySFX(e, cfg.SoundSwing)

	damage, hit := ResolveAttack(knightEntry, dragonEntry, GetOrCreateRNG(e))
	if !hit {
		return 0
	}
	QueueDamage(dragonEntry, damage)
	return damage
}
