package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// LitShader applies light brightness and the hit flash to billboards
	LitShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if LitShader != nil {
		return nil
	}

	litSrc, err := shaderFS.ReadFile("shaders/lit.kage")
	if err != nil {
		return err
	}
	LitShader, err = ebiten.NewShader(litSrc)
	if err != nil {
		return err
	}

	return nil
}
