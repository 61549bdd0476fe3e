package config

// SettingsConfig contains the ranges exposed by the settings panel
type SettingsConfig struct {
	PointLightMin  float64
	PointLightMax  float64
	PointLightStep float64
	VolumeSteps    []float64
	AppName        string // gdata storage namespace
	StorageKey     string
}

// Settings is the global settings panel configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		PointLightMin:  0,
		PointLightMax:  5,
		PointLightStep: 0.25,
		VolumeSteps:    []float64{0, 0.25, 0.5, 0.75, 1.0},
		AppName:        "dragon-arena",
		StorageKey:     "settings",
	}
}
