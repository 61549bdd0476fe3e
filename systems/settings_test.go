package systems

import (
	"testing"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/leveldata"
)

func TestAdjustPointLight(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		steps int
		want  float64
	}{
		{"one step up", 2, 1, 2.25},
		{"one step down", 2, -1, 1.75},
		{"snaps to grid", 1.1, 1, 1.25},
		{"clamped at max", 4.9, 4, cfg.Settings.PointLightMax},
		{"clamped at min", 0.1, -3, cfg.Settings.PointLightMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &components.SettingsData{PointLightIntensity: tt.start}
			AdjustPointLight(s, tt.steps)
			if s.PointLightIntensity != tt.want {
				t.Errorf("Expected %.2f, got %.2f", tt.want, s.PointLightIntensity)
			}
			if !s.Dirty {
				t.Error("Expected settings to be marked dirty")
			}
		})
	}
}

func TestCycleSFXVolume(t *testing.T) {
	tests := []struct {
		start float64
		want  float64
	}{
		{0, 0.25},
		{0.5, 0.75},
		{0.6, 0.75},
		{1.0, 0},
	}

	for _, tt := range tests {
		s := &components.SettingsData{SFXVolume: tt.start}
		CycleSFXVolume(s)
		if s.SFXVolume != tt.want {
			t.Errorf("From %.2f: expected %.2f, got %.2f", tt.start, tt.want, s.SFXVolume)
		}
	}
}

func TestApplySettingsReachesLightsAndAudio(t *testing.T) {
	e := newTestECS()
	point := e.World.Entry(e.World.Create(components.Light))
	components.Light.SetValue(point, components.LightData{Kind: leveldata.LightPoint, Intensity: 2})
	ambient := e.World.Entry(e.World.Create(components.Light))
	components.Light.SetValue(ambient, components.LightData{Kind: leveldata.LightAmbient, Intensity: 1.5})

	settings := &components.SettingsData{PointLightIntensity: 3.5, SFXVolume: 0.25, Muted: true}
	ApplySettings(e, settings)

	if got := components.Light.Get(point).Intensity; got != 3.5 {
		t.Errorf("Expected point light 3.5, got %.2f", got)
	}
	if got := components.Light.Get(ambient).Intensity; got != 1.5 {
		t.Errorf("Expected ambient untouched, got %.2f", got)
	}
	audio := GetOrCreateAudio(e)
	if audio.SFXVolume != 0.25 || !audio.Muted {
		t.Errorf("Expected audio 0.25 muted, got %.2f muted %v", audio.SFXVolume, audio.Muted)
	}
}

func TestGetOrCreateSettingsReadsPointLight(t *testing.T) {
	startupSettings = nil
	e := newTestECS()
	point := e.World.Entry(e.World.Create(components.Light))
	components.Light.SetValue(point, components.LightData{Kind: leveldata.LightPoint, Intensity: 2})

	s := GetOrCreateSettings(e)

	if s.PointLightIntensity != 2 {
		t.Errorf("Expected default from the arena light, got %.2f", s.PointLightIntensity)
	}
	if s.SFXVolume != cfg.Audio.DefaultSFXVol {
		t.Errorf("Expected default volume %.2f, got %.2f", cfg.Audio.DefaultSFXVol, s.SFXVolume)
	}
	if again := GetOrCreateSettings(e); again != s {
		t.Error("Expected the same singleton")
	}
}

func TestUpdateSettingsToggles(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)
	input.Current[cfg.ActionToggleSettings] = true
	input.Current[cfg.ActionToggleDebug] = true

	UpdateSettings(e)
	s := GetOrCreateSettings(e)
	if !s.PanelOpen || !IsSettingsOpen(e) {
		t.Error("Expected the panel to open")
	}
	if s.DebugOverlay == cfg.Debug.Overlay {
		t.Error("Expected the debug overlay to toggle")
	}

	// Held keys do not toggle again
	input.Advance()
	UpdateSettings(e)
	if !s.PanelOpen {
		t.Error("Expected the panel to stay open while the key is held")
	}
}

func TestDecodeSettingsClamps(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantLight float64
		wantVol   float64
		wantMuted bool
		wantErr   bool
	}{
		{"in range", `{"pointLightIntensity":1.5,"sfxVolume":0.5,"muted":true}`, 1.5, 0.5, true, false},
		{"too bright", `{"pointLightIntensity":12,"sfxVolume":0.5}`, cfg.Settings.PointLightMax, 0.5, false, false},
		{"negative volume", `{"pointLightIntensity":1,"sfxVolume":-2}`, 1, 0, false, false},
		{"garbage", `not json`, 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSettings([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.PointLightIntensity != tt.wantLight || got.SFXVolume != tt.wantVol || got.Muted != tt.wantMuted {
				t.Errorf("Expected %.2f %.2f %v, got %+v", tt.wantLight, tt.wantVol, tt.wantMuted, *got)
			}
		})
	}
}

func TestApplySavedSettings(t *testing.T) {
	s := &components.SettingsData{PointLightIntensity: 2, SFXVolume: 0.75}

	ApplySavedSettings(s, nil)
	if s.PointLightIntensity != 2 {
		t.Error("Expected nil saved settings to change nothing")
	}

	ApplySavedSettings(s, &SavedSettings{PointLightIntensity: 4, SFXVolume: 0.25, Muted: true})
	if s.PointLightIntensity != 4 || s.SFXVolume != 0.25 || !s.Muted {
		t.Errorf("Expected saved values applied, got %+v", *s)
	}
}

func TestMutedFlagIsNotSaved(t *testing.T) {
	startupSettings = &SavedSettings{PointLightIntensity: 1, SFXVolume: 0.5}
	cfg.Debug.Muted = true
	defer func() {
		cfg.Debug.Muted = false
		startupSettings = nil
	}()

	e := newTestECS()
	s := GetOrCreateSettings(e)
	if !s.Muted {
		t.Fatal("Expected the flag to mute this session")
	}

	AdjustPointLight(s, 1)
	UpdateSettings(e)
	if startupSettings.Muted {
		t.Error("Expected the saved settings to stay unmuted")
	}
	if !GetOrCreateAudio(e).Muted {
		t.Error("Expected audio to stay muted for this session")
	}

	// An explicit toggle is a user choice and is saved
	ToggleMute(s)
	ToggleMute(s)
	if got := PersistedSettings(s); !got.Muted {
		t.Error("Expected a toggled mute to be saved")
	}
}
