package systems

import (
	"image/color"
	"math"

	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func collectLights(e *ecs.ECS) []components.LightData {
	var lights []components.LightData
	components.Light.Each(e.World, func(entry *donburi.Entry) {
		lights = append(lights, *components.Light.Get(entry))
	})
	return lights
}

func luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// Brightness sums the light reaching a surface at pos facing normal and maps
// it to a colour multiplier in the configured range.
func Brightness(lights []components.LightData, pos, normal gamemath.Vec3) float64 {
	n := normal.Normalized()
	total := 0.0

	for _, l := range lights {
		lum := luminance(l.Color) * l.Intensity
		switch l.Kind {
		case leveldata.LightAmbient:
			total += lum
		case leveldata.LightHemisphere:
			t := 0.5 * (n.Y + 1)
			ground := luminance(l.GroundColor) * l.Intensity
			total += ground + (lum-ground)*t
		case leveldata.LightDirectional:
			dir := l.Position.Normalized()
			total += lum * math.Max(0, n.Dot(dir))
		case leveldata.LightPoint:
			d := gamemath.Distance(pos, l.Position)
			if d >= cfg.Lighting.PointLightRange {
				continue
			}
			falloff := 1 - d/cfg.Lighting.PointLightRange
			dir := l.Position.Sub(pos).Normalized()
			total += lum * falloff * falloff * math.Max(0, n.Dot(dir))
		}
	}

	return gamemath.Clamp(total*cfg.Lighting.Exposure, cfg.Lighting.MinBrightness, cfg.Lighting.MaxBrightness)
}
