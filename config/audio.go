package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSwing
	SoundHit
	SoundRoar
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundSwing: "audio/sfx/swing.wav",
			SoundHit:   "audio/sfx/hit.wav",
			SoundRoar:  "audio/sfx/roar.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundSwing: 0.6,
			SoundRoar:  1.2,
		},
	}
}
