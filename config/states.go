package config

// StateID identifies an animation clip / character state.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	Running
	Attack
	Hit
	Die
)

// StateToFileName maps StateID to the sprite sheet filename inside a model directory.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Walk:    "walk",
	Running: "running",
	Attack:  "attack",
	Hit:     "hit",
	Die:     "die",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// OutcomeID is the state of the fight.
type OutcomeID int

const (
	OutcomeFighting OutcomeID = iota
	OutcomeVictory
)
