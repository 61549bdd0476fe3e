package components

import "github.com/yohamta/donburi"

// SettingsData stores the current user settings and panel state
type SettingsData struct {
	PanelOpen    bool
	DebugOverlay bool

	PointLightIntensity float64
	SFXVolume           float64
	Muted               bool

	// Mute choice written to disk; the -muted flag does not touch it
	SavedMuted bool

	// Set when a value changed and should be written out
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
