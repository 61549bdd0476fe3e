package components

import (
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer state for the orbit camera
	Dragging     bool
	DragDX       float64
	DragDY       float64
	WheelY       float64
	CursorX      int
	CursorY      int
	lastCursorOK bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Advance copies this frame into Previous before new polling.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.DragDX, i.DragDY, i.WheelY = 0, 0, 0
}

// MoveCursor records a pointer position and, while dragging, the delta from
// the last one.
func (i *InputData) MoveCursor(x, y int, dragging bool) {
	if dragging && i.lastCursorOK && i.Dragging {
		i.DragDX = float64(x - i.CursorX)
		i.DragDY = float64(y - i.CursorY)
	}
	i.CursorX, i.CursorY = x, y
	i.Dragging = dragging
	i.lastCursorOK = true
}

var Input = donburi.NewComponentType[InputData]()
