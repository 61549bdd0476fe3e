package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dragon-arena/assets"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/systems"
	"github.com/automoto/dragon-arena/systems/factory"
	"github.com/automoto/dragon-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the dragon fight. Restarting builds a fresh one.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("failed to load shaders, sprites drawn unlit: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	as.ecs = ecs

	factory.CreateGame(ecs)
	if _, err := factory.CreateArena(ecs); err != nil {
		log.Printf("failed to build arena: %v", err)
	}
	settings := systems.GetOrCreateSettings(ecs)
	systems.ApplySettings(ecs, settings)
	as.settingsUI = ui.NewSettingsUI(settings)

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(as.updateSettingsUI)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateKnight)
	ecs.AddSystem(systems.UpdateDragon)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateDamageText)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.NewUpdateOutcome(as.sceneChanger, func() interface{} {
		return NewArenaScene(as.sceneChanger)
	}))

	// World layer, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawEnvironment)
	ecs.AddRenderer(cfg.Default, systems.DrawGroundShadows)
	ecs.AddRenderer(cfg.Default, systems.DrawMeshes)
	ecs.AddRenderer(cfg.Default, systems.DrawStandingShadows)
	ecs.AddRenderer(cfg.Default, systems.DrawModels)
	ecs.AddRenderer(cfg.Default, systems.DrawDamageTexts)

	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawOutcome)
	ecs.AddRenderer(cfg.HUD, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, as.drawSettingsUI)
}

func (as *ArenaScene) updateSettingsUI(_ *ecs.ECS) {
	as.settingsUI.UpdateUI()
	as.settingsUI.Update()
}

func (as *ArenaScene) drawSettingsUI(_ *ecs.ECS, screen *ebiten.Image) {
	as.settingsUI.Draw(screen)
}
