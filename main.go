package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/fonts"
	"github.com/automoto/dragon-arena/scenes"
	"github.com/automoto/dragon-arena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the debug overlay")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "damage roll seed (0 = time based)")
	flag.BoolVar(&config.Debug.Muted, "muted", config.Debug.Muted, "start with sound muted")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dragon vs Knight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	systems.LoadStartupSettings()
	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
