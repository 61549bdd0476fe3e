package components

import (
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DamageTextSlot is one reusable floating number.
type DamageTextSlot struct {
	InUse     bool
	Amount    int
	Text      string
	Position  gamemath.Vec3
	StartY    float64
	CreatedAt int64
	Opacity   float64
	// Linear 0..1 over the lifespan
	Progress *gween.Tween
}

// DamageTextPoolData is a fixed set of slots. Its length never changes after
// creation.
type DamageTextPoolData struct {
	Slots []DamageTextSlot
}

// InUse counts the visible indicators.
func (p *DamageTextPoolData) InUse() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].InUse {
			n++
		}
	}
	return n
}

func (p *DamageTextPoolData) Capacity() int {
	return len(p.Slots)
}

func NewDamageTextPool(capacity int) DamageTextPoolData {
	return DamageTextPoolData{Slots: make([]DamageTextSlot, capacity)}
}

var DamageTextPool = donburi.NewComponentType[DamageTextPoolData]()
