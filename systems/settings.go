package systems

import (
	"math"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// startupSettings holds what LoadStartupSettings found on disk
var startupSettings *SavedSettings

// LoadStartupSettings opens persistence and reads saved settings once at boot.
func LoadStartupSettings() {
	if err := InitPersistence(); err != nil {
		return
	}
	saved, err := LoadSettings()
	if err != nil {
		return
	}
	startupSettings = saved
}

// UpdateSettings handles the panel and overlay toggles, pushes the values to
// lights and audio, and writes changes out.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if input.JustPressed(cfg.ActionToggleSettings) {
		settings.PanelOpen = !settings.PanelOpen
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.DebugOverlay = !settings.DebugOverlay
	}

	ApplySettings(e, settings)

	if settings.Dirty {
		settings.Dirty = false
		SaveCurrentSettings(settings)
		startupSettings = PersistedSettings(settings)
	}
}

// ApplySettings pushes settings onto point lights and the audio singleton.
func ApplySettings(e *ecs.ECS, settings *components.SettingsData) {
	components.Light.Each(e.World, func(entry *donburi.Entry) {
		light := components.Light.Get(entry)
		if light.Kind == leveldata.LightPoint {
			light.Intensity = settings.PointLightIntensity
		}
	})

	audioData := GetOrCreateAudio(e)
	audioData.SFXVolume = settings.SFXVolume
	audioData.Muted = settings.Muted
}

// AdjustPointLight moves the point light intensity by steps and snaps it to the step grid.
func AdjustPointLight(s *components.SettingsData, steps int) {
	step := cfg.Settings.PointLightStep
	v := s.PointLightIntensity + float64(steps)*step
	v = math.Round(v/step) * step
	s.PointLightIntensity = gamemath.Clamp(v, cfg.Settings.PointLightMin, cfg.Settings.PointLightMax)
	s.Dirty = true
}

// CycleSFXVolume moves to the next volume step, wrapping to the first.
func CycleSFXVolume(s *components.SettingsData) {
	steps := cfg.Settings.VolumeSteps
	next := steps[0]
	for i, v := range steps {
		if v > s.SFXVolume+1e-9 {
			next = steps[i]
			break
		}
	}
	s.SFXVolume = next
	s.Dirty = true
}

func ToggleMute(s *components.SettingsData) {
	s.Muted = !s.Muted
	s.SavedMuted = s.Muted
	s.Dirty = true
}

// IsSettingsOpen returns true if the settings panel is showing
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).PanelOpen
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from defaults and any saved settings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		s := components.SettingsData{
			DebugOverlay:        cfg.Debug.Overlay,
			PointLightIntensity: defaultPointLightIntensity(e),
			SFXVolume:           cfg.Audio.DefaultSFXVol,
		}
		ApplySavedSettings(&s, startupSettings)
		if cfg.Debug.Muted {
			s.Muted = true
		}
		components.Settings.SetValue(entry, s)
	}
	return components.Settings.Get(entry)
}

// defaultPointLightIntensity reads the point light placed in the arena.
func defaultPointLightIntensity(e *ecs.ECS) float64 {
	intensity := 1.0
	components.Light.Each(e.World, func(entry *donburi.Entry) {
		light := components.Light.Get(entry)
		if light.Kind == leveldata.LightPoint {
			intensity = light.Intensity
		}
	})
	return intensity
}
