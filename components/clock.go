package components

import (
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ClockData counts simulation ticks. Timestamps in the world are tick counts.
type ClockData struct {
	Tick int64
}

var Clock = donburi.NewComponentType[ClockData]()

// RNGData holds the damage roll generator.
type RNGData struct {
	*gamemath.PRNG
}

var RNG = donburi.NewComponentType[RNGData]()
