package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Ratio returns current/max in [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// HealthBarData is the on-screen bar. Displayed eases toward the real ratio.
type HealthBarData struct {
	Displayed float64
	Target    float64
	Tween     *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
