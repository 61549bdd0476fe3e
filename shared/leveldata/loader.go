package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS or fstest.MapFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:         levelMap.Width * levelMap.TileWidth,
		Height:        levelMap.Height * levelMap.TileHeight,
		ShadowOpacity: 0.5,
	}
	arena.OriginX = float64(arena.Width) / 2
	arena.OriginY = float64(arena.Height) / 2

	if levelMap.Properties != nil {
		arena.GroundElevation = levelMap.Properties.GetFloat("groundElevation")
		if s := levelMap.Properties.GetString("shadowOpacity"); s != "" {
			arena.ShadowOpacity = levelMap.Properties.GetFloat("shadowOpacity")
		}
		arena.Environment = levelMap.Properties.GetString("environment")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupModels:
			for _, o := range og.Objects {
				x, z := arena.ToWorld(o.X, o.Y)
				scale := o.Properties.GetFloat("scale")
				if scale == 0 {
					scale = 1
				}
				arena.Models = append(arena.Models, ModelPlacement{
					Class:    objectClass(o),
					Position: gamemath.V3(x, o.Properties.GetFloat("elevation"), z),
					Scale:    scale,
					Yaw:      o.Properties.GetFloat("yaw") * math.Pi / 180,
				})
			}
		case GroupLights:
			for _, o := range og.Objects {
				light, err := parseLight(arena, o)
				if err != nil {
					return nil, fmt.Errorf("light %q in %s: %w", o.Name, tmxPath, err)
				}
				arena.Lights = append(arena.Lights, light)
			}
		case GroupBounds:
			for _, o := range og.Objects {
				arena.Bounds = append(arena.Bounds, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	return arena, nil
}

func objectClass(o *tiled.Object) string {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type= attribute
	}
	return strings.ToLower(class)
}

func parseLight(arena *Arena, o *tiled.Object) (LightPlacement, error) {
	var kind LightKind
	switch objectClass(o) {
	case "point":
		kind = LightPoint
	case "ambient":
		kind = LightAmbient
	case "directional":
		kind = LightDirectional
	case "hemisphere":
		kind = LightHemisphere
	default:
		return LightPlacement{}, fmt.Errorf("unknown light class %q", objectClass(o))
	}

	c, err := ParseColor(o.Properties.GetString("color"))
	if err != nil {
		return LightPlacement{}, err
	}
	light := LightPlacement{
		Kind:      kind,
		Color:     c,
		Intensity: o.Properties.GetFloat("intensity"),
	}
	x, z := arena.ToWorld(o.X, o.Y)
	light.Position = gamemath.V3(x, o.Properties.GetFloat("elevation"), z)

	if kind == LightHemisphere {
		g, err := ParseColor(o.Properties.GetString("groundColor"))
		if err != nil {
			return LightPlacement{}, err
		}
		light.GroundColor = g
	}
	return light, nil
}

// ParseColor reads Tiled's "#RRGGBB" or "#AARRGGBB". Empty means white.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		return color.RGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	return color.RGBA{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
}
