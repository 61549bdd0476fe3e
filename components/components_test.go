package components

import (
	"testing"

	"github.com/automoto/dragon-arena/assets/animations"
	"github.com/automoto/dragon-arena/config"
)

func TestDamageTextPoolCounts(t *testing.T) {
	pool := NewDamageTextPool(10)
	if pool.Capacity() != 10 || pool.InUse() != 0 {
		t.Fatalf("Expected 0/10, got %d/%d", pool.InUse(), pool.Capacity())
	}

	pool.Slots[3].InUse = true
	pool.Slots[9].InUse = true
	if got := pool.InUse(); got != 2 {
		t.Errorf("Expected 2 in use, got %d", got)
	}
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name string
		h    HealthData
		want float64
	}{
		{"full", HealthData{Current: 1000, Max: 1000}, 1},
		{"half", HealthData{Current: 500, Max: 1000}, 0.5},
		{"below zero", HealthData{Current: -20, Max: 1000}, 0},
		{"no max", HealthData{Current: 10, Max: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Ratio(); got != tt.want {
				t.Errorf("Expected %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func testMixer() *AnimationData {
	return &AnimationData{
		Actions: map[config.StateID]*animations.Action{
			config.Idle:   animations.NewAction(0, 1, 0.5, false, false),
			config.Attack: animations.NewAction(0, 3, 0.1, true, true),
		},
		Current: config.Idle,
	}
}

func TestAnimationPlaySwitchesClip(t *testing.T) {
	a := testMixer()
	a.Play(config.Idle)

	if !a.Play(config.Attack) {
		t.Fatal("Expected attack to play")
	}
	if a.Current != config.Attack || !a.IsRunning(config.Attack) {
		t.Error("Expected attack to be current and running")
	}
	if a.IsRunning(config.Idle) {
		t.Error("Expected idle to stop")
	}
	if a.Play(config.Walk) {
		t.Error("Expected a missing clip to be refused")
	}
	if a.Current != config.Attack {
		t.Errorf("Expected current to stay attack, got %v", a.Current)
	}
}

func TestAnimationLoopDoesNotRestart(t *testing.T) {
	a := testMixer()
	a.Play(config.Idle)
	a.Action(config.Idle).Update(0.6)

	a.Loop(config.Idle)

	if frame, _ := a.CurrentFrame(); frame != 1 {
		t.Errorf("Expected idle to keep its frame, got %d", frame)
	}
}

func TestStateSet(t *testing.T) {
	s := StateData{CurrentState: config.Idle, PreviousState: config.StateNone}

	if s.Set(config.Idle) || s.StateTimer != 1 {
		t.Errorf("Expected same state to tick the timer, got timer %d", s.StateTimer)
	}
	if !s.Set(config.Running) {
		t.Error("Expected a change to be reported")
	}
	if s.PreviousState != config.Idle || s.StateTimer != 0 {
		t.Errorf("Expected previous idle and timer reset, got %v %d", s.PreviousState, s.StateTimer)
	}
}

func TestInputDrag(t *testing.T) {
	var in InputData
	in.MoveCursor(10, 10, true)
	if in.DragDX != 0 {
		t.Error("Expected no delta on the first drag sample")
	}
	in.MoveCursor(14, 7, true)
	if in.DragDX != 4 || in.DragDY != -3 {
		t.Errorf("Expected delta (4, -3), got (%.0f, %.0f)", in.DragDX, in.DragDY)
	}
	in.Advance()
	if in.DragDX != 0 || in.DragDY != 0 {
		t.Error("Expected Advance to clear the delta")
	}
}
