package systems

import (
	"log"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveAttack decides whether attacker reaches defender and rolls the
// damage. A missing or defeated defender is never hit.
func ResolveAttack(attacker, defender *donburi.Entry, rng *gamemath.PRNG) (int, bool) {
	if attacker == nil || defender == nil || !attacker.Valid() || !defender.Valid() {
		return 0, false
	}
	if defender.HasComponent(components.Dragon) && components.Dragon.Get(defender).Defeated {
		return 0, false
	}

	from := components.Transform.Get(attacker).Position
	to := components.Transform.Get(defender).Position
	if !gamemath.WithinRange(from, to, cfg.Combat.HitDistance) {
		return 0, false
	}
	return rng.IntRange(cfg.Combat.MinDamage, cfg.Combat.MaxDamage), true
}

// QueueDamage records a hit for UpdateCombat to apply.
func QueueDamage(defender *donburi.Entry, amount int) {
	if !defender.HasComponent(components.DamageEvent) {
		defender.AddComponent(components.DamageEvent)
	}
	ev := components.DamageEvent.Get(defender)
	ev.Amounts = append(ev.Amounts, amount)
}

// UpdateCombat applies queued damage events and keeps every health value in range.
func UpdateCombat(e *ecs.ECS) {
	var hit []*donburi.Entry
	components.DamageEvent.Each(e.World, func(entry *donburi.Entry) {
		hit = append(hit, entry)
	})

	for _, entry := range hit {
		ev := components.DamageEvent.Get(entry)
		for _, amount := range ev.Amounts {
			ApplyDamage(e, entry, amount)
		}
		entry.RemoveComponent(components.DamageEvent)
	}

	components.Health.Each(e.World, func(entry *donburi.Entry) {
		h := components.Health.Get(entry)
		h.Current = gamemath.ClampInt(h.Current, 0, h.Max)
	})
}

// ApplyDamage subtracts amount from the defender's health and runs the hit
// feedback. It returns false when the defender can no longer take damage.
func ApplyDamage(e *ecs.ECS, defender *donburi.Entry, amount int) bool {
	if !defender.HasComponent(components.Health) {
		return false
	}
	isDragon := defender.HasComponent(components.Dragon)
	if isDragon && components.Dragon.Get(defender).Defeated {
		return false
	}

	health := components.Health.Get(defender)
	health.Current = gamemath.ClampInt(health.Current-amount, 0, health.Max)

	pos := components.Transform.Get(defender).Position
	if defender.HasComponent(components.DamageTextPool) {
		pool := components.DamageTextPool.Get(defender)
		spawnAt := pos.Add(gamemath.V3(0, cfg.DamageText.SpawnOffsetY, 0))
		SpawnDamageText(pool, amount, spawnAt, Now(e))
	}

	if defender.HasComponent(components.Animation) {
		anim := components.Animation.Get(defender)
		if !anim.IsRunning(cfg.Hit) {
			anim.Play(cfg.Hit)
		}
	}

	TriggerFlash(defender, cfg.Combat.HitFlashFrames, 0.6)
	TriggerScreenShake(e, cfg.Combat.HitShake, cfg.Combat.HitShakeFrames)
	PlaySFX(e, cfg.SoundHit)
	log.Printf("dealt %d damage, dragon hp %d", amount, health.Current)

	if isDragon && health.Current == 0 {
		defeatDragon(e, defender)
	}
	return true
}

func defeatDragon(e *ecs.ECS, entry *donburi.Entry) {
	dragon := components.Dragon.Get(entry)
	if dragon.Defeated {
		return
	}
	dragon.Defeated = true

	if entry.HasComponent(components.Animation) {
		anim := components.Animation.Get(entry)
		if !anim.Play(cfg.Die) {
			// No die clip: hold the hit pose
			anim.Play(cfg.Hit)
		}
	}
	PlaySFX(e, cfg.SoundRoar)
	log.Printf("dragon defeated")

	outcome := GetOrCreateOutcome(e)
	outcome.State = cfg.OutcomeVictory
	outcome.Timer = 0
}
