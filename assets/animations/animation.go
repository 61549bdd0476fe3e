package animations

// Action plays one clip of a sprite sheet. Frames are sheet indices from
// First to Last, each shown for Speed seconds.
type Action struct {
	First int
	Last  int
	Speed float32 // seconds per frame
	// Once stops the action after the last frame instead of wrapping
	Once bool
	// ClampWhenFinished holds the last frame after a Once action ends
	ClampWhenFinished bool

	elapsed  float32
	frame    int
	running  bool
	finished bool
}

func NewAction(first, last int, speed float32, once, clamp bool) *Action {
	return &Action{
		First:             first,
		Last:              last,
		Speed:             speed,
		Once:              once,
		ClampWhenFinished: clamp,
		frame:             first,
	}
}

// Reset rewinds to the first frame. It does not start playback.
func (a *Action) Reset() {
	a.elapsed = 0
	a.frame = a.First
	a.finished = false
}

func (a *Action) Play() {
	a.running = true
}

// Stop halts playback and rewinds.
func (a *Action) Stop() {
	a.running = false
	a.Reset()
}

func (a *Action) IsRunning() bool {
	return a.running
}

// Update advances playback by dt seconds.
func (a *Action) Update(dt float32) {
	if !a.running || a.Speed <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.Speed {
		a.elapsed -= a.Speed
		a.frame++
		if a.frame <= a.Last {
			continue
		}
		if !a.Once {
			a.frame = a.First
			continue
		}
		a.running = false
		a.finished = true
		a.elapsed = 0
		if a.ClampWhenFinished {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
		return
	}
}

func (a *Action) Frame() int {
	return a.frame
}

// Finished reports a completed Once action. The flag clears when read.
func (a *Action) Finished() bool {
	f := a.finished
	a.finished = false
	return f
}
