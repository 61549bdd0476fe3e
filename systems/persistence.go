package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PointLightIntensity float64 `json:"pointLightIntensity"`
	SFXVolume           float64 `json:"sfxVolume"`
	Muted               bool    `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses stored settings and clamps them to the panel ranges.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.PointLightIntensity = gamemath.Clamp(settings.PointLightIntensity, cfg.Settings.PointLightMin, cfg.Settings.PointLightMax)
	settings.SFXVolume = gamemath.Clamp(settings.SFXVolume, 0, 1)
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// PersistedSettings returns the values of the Settings component that go to disk
func PersistedSettings(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		PointLightIntensity: s.PointLightIntensity,
		SFXVolume:           s.SFXVolume,
		Muted:               s.SavedMuted,
	}
}

// SaveCurrentSettings saves the values held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(PersistedSettings(s))
}

// ApplySavedSettings copies loaded settings into the Settings component
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.PointLightIntensity = saved.PointLightIntensity
	s.SFXVolume = saved.SFXVolume
	s.Muted = saved.Muted
	s.SavedMuted = saved.Muted
}
