package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Small  FontName = "small"
	Damage FontName = "damage"
	Title  FontName = "title"
)

// Face wraps the font for text/v2 drawing.
func (f FontName) Face() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	faces[f] = face
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}

	uiSource *text.GoTextFaceSource
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
}

// LoadDefaults registers the Go fonts under every name the game uses.
func LoadDefaults() {
	LoadFontWithSize(HUD, goregular.TTF, 14)
	LoadFontWithSize(Small, goregular.TTF, 11)
	LoadFontWithSize(Damage, gobold.TTF, 24)
	LoadFontWithSize(Title, gobold.TTF, 32)
}

// UIFace returns a text/v2 face for the ebitenui panel.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("UI font: %v", err))
		}
		uiSource = src
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
