package systems

import (
	"math"
	"testing"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
)

func TestSpawnDamageTextDropsWhenFull(t *testing.T) {
	pool := components.NewDamageTextPool(cfg.DamageText.PoolSize)

	for i := 0; i < cfg.DamageText.PoolSize; i++ {
		if !SpawnDamageText(&pool, 50+i, gamemath.V3(0, 5, 0), 0) {
			t.Fatalf("Expected slot %d to be free", i)
		}
	}
	if SpawnDamageText(&pool, 99, gamemath.V3(0, 5, 0), 1) {
		t.Error("Expected spawn to be dropped when the pool is full")
	}
	if pool.Capacity() != cfg.DamageText.PoolSize || pool.InUse() != cfg.DamageText.PoolSize {
		t.Errorf("Expected %d/%d, got %d/%d", cfg.DamageText.PoolSize, cfg.DamageText.PoolSize, pool.InUse(), pool.Capacity())
	}
}

func TestSpawnDamageTextReusesFirstFreeSlot(t *testing.T) {
	pool := components.NewDamageTextPool(3)
	SpawnDamageText(&pool, 1, gamemath.V3(0, 0, 0), 0)
	SpawnDamageText(&pool, 2, gamemath.V3(0, 0, 0), 0)
	SpawnDamageText(&pool, 3, gamemath.V3(0, 0, 0), 0)
	pool.Slots[1] = components.DamageTextSlot{}

	SpawnDamageText(&pool, 4, gamemath.V3(0, 0, 0), 5)

	if got := pool.Slots[1].Amount; got != 4 {
		t.Errorf("Expected slot 1 to hold 4, got %d", got)
	}
}

func TestUpdateDamageTextsRiseAndFade(t *testing.T) {
	lifespan := cfg.DamageText.LifespanTicks
	tests := []struct {
		name        string
		age         int64
		wantInUse   bool
		wantY       float64
		wantOpacity float64
	}{
		{"fresh", 0, true, 5, 1},
		{"quarter", lifespan / 4, true, 5 + cfg.DamageText.RiseDistance/4, 0.75},
		{"halfway", lifespan / 2, true, 5 + cfg.DamageText.RiseDistance/2, 0.5},
		{"last frame", lifespan - 1, true, 5 + cfg.DamageText.RiseDistance*float64(lifespan-1)/float64(lifespan), 1 / float64(lifespan)},
		{"expired", lifespan, false, 0, 0},
		{"long gone", lifespan * 3, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := components.NewDamageTextPool(2)
			SpawnDamageText(&pool, 80, gamemath.V3(1, 5, 2), 100)

			UpdateDamageTexts(&pool, 100+tt.age)

			slot := pool.Slots[0]
			if slot.InUse != tt.wantInUse {
				t.Fatalf("Expected in use %v, got %v", tt.wantInUse, slot.InUse)
			}
			if !tt.wantInUse {
				return
			}
			if math.Abs(slot.Position.Y-tt.wantY) > 1e-4 {
				t.Errorf("Expected y %.4f, got %.4f", tt.wantY, slot.Position.Y)
			}
			if math.Abs(slot.Opacity-tt.wantOpacity) > 1e-4 {
				t.Errorf("Expected opacity %.4f, got %.4f", tt.wantOpacity, slot.Opacity)
			}
			if slot.Position.X != 1 || slot.Position.Z != 2 {
				t.Errorf("Expected only y to move, got %v", slot.Position)
			}
		})
	}
}

func TestUpdateDamageTextFreesAcrossWorld(t *testing.T) {
	e := newTestECS()
	dragon := spawnTestDragon(e, gamemath.V3(0, 0, 0), cfg.Dragon.Health)
	pool := components.DamageTextPool.Get(dragon)
	SpawnDamageText(pool, 60, gamemath.V3(0, 5, 0), Now(e))

	for i := int64(0); i < cfg.DamageText.LifespanTicks; i++ {
		UpdateClock(e)
		UpdateDamageText(e)
	}

	if got := pool.InUse(); got != 0 {
		t.Errorf("Expected the slot to be freed after its lifespan, got %d in use", got)
	}
}
