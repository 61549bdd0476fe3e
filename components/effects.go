package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect on hit
type FlashData struct {
	Duration int     // frames remaining
	Amount   float32 // 0 = untouched, 1 = solid white
}

var Flash = donburi.NewComponentType[FlashData]()
