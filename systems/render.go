package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/dragon-arena/assets"
	"github.com/automoto/dragon-arena/components"
	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
	"github.com/automoto/dragon-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	trianglesOp  = &ebiten.DrawTrianglesOptions{Address: ebiten.AddressRepeat}
	shadowImage  *ebiten.Image
	meshVertices = make([]ebiten.Vertex, 4)
	meshIndices  = []uint16{0, 1, 2, 0, 2, 3}
)

// World units covered by one repeat of a mesh texture
const meshTextureUnits = 8.0

// view projects world points for one frame, shake included.
type view struct {
	cam    gamemath.OrbitCamera
	w, h   float64
	shakeX float64
	shakeY float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (*view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	camera := components.Camera.Get(cameraEntry)
	return &view{
		cam:    camera.OrbitCamera,
		w:      float64(screen.Bounds().Dx()),
		h:      float64(screen.Bounds().Dy()),
		shakeX: camera.ShakeX,
		shakeY: camera.ShakeY,
	}, true
}

func (v *view) project(p gamemath.Vec3) (gamemath.Projection, bool) {
	pr, ok := v.cam.Project(p, v.w, v.h)
	pr.X += v.shakeX
	pr.Y += v.shakeY
	return pr, ok
}

// DrawEnvironment fills the background with the sky, or the fallback colour.
func DrawEnvironment(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Environment.First(e.World)
	if !ok {
		screen.Fill(cfg.Lighting.FallbackSkyColor)
		return
	}
	env := components.Environment.Get(entry)
	if env.Image == nil {
		screen.Fill(env.Fallback)
		return
	}

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	iw, ih := float64(env.Image.Bounds().Dx()), float64(env.Image.Bounds().Dy())
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterLinear
	drawOp.GeoM.Scale(sw/iw, sh/ih)
	screen.DrawImage(env.Image, drawOp)
	drawOp.Filter = ebiten.FilterNearest
}

// DrawGroundShadows draws shadows that land on the ground plane (the temple's).
func DrawGroundShadows(e *ecs.ECS, screen *ebiten.Image) {
	drawShadows(e, screen, true)
}

// DrawStandingShadows draws shadows under characters, on whatever they stand on.
func DrawStandingShadows(e *ecs.ECS, screen *ebiten.Image) {
	drawShadows(e, screen, false)
}

func drawShadows(e *ecs.ECS, screen *ebiten.Image, onGround bool) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	groundY, opacity := 0.0, 0.5
	if entry, ok := components.Ground.First(e.World); ok {
		g := components.Ground.Get(entry)
		groundY, opacity = g.Elevation, g.ShadowOpacity
	}
	img := getShadowImage()
	size := float64(img.Bounds().Dx())
	squash := math.Sin(v.cam.Pitch)

	components.Model.Each(e.World, func(entry *donburi.Entry) {
		model := components.Model.Get(entry)
		if model.Model == nil || !model.Def.CastShadow {
			return
		}
		isTemple := entry.HasComponent(tags.Temple)
		if isTemple != onGround {
			return
		}

		t := components.Transform.Get(entry)
		at := t.Position
		if isTemple {
			at.Y = groundY
		}
		p, ok := v.project(at)
		if !ok {
			return
		}
		w := model.Def.ShadowWidth * t.Scale * p.Scale
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-size/2, -size/2)
		drawOp.GeoM.Scale(w/size, w*squash/size)
		drawOp.GeoM.Translate(p.X, p.Y)
		drawOp.ColorScale.ScaleWithColor(cfg.Lighting.ShadowColor)
		drawOp.ColorScale.ScaleAlpha(float32(opacity))
		screen.DrawImage(img, drawOp)
	})
}

// getShadowImage builds a soft black disc once.
func getShadowImage() *ebiten.Image {
	if shadowImage != nil {
		return shadowImage
	}
	shadowImage = ebiten.NewImage(64, 64)
	for r := float32(32); r > 4; r -= 4 {
		vector.FillCircle(shadowImage, 32, 32, r, color.RGBA{A: 64}, true)
	}
	return shadowImage
}

// MeshFace is one textured quad of a stepped mesh.
type MeshFace struct {
	Corners [4]gamemath.Vec3
	Normal  gamemath.Vec3
	Shade   float64
	Depth   float64
}

// MeshFaces builds the visible quads of a stepped pyramid: each tier is a box
// narrower than the one below. Faces turned away from eye are dropped.
func MeshFaces(t *components.TransformData, mesh *cfg.MeshDef, eye gamemath.Vec3) []MeshFace {
	if mesh == nil || mesh.Tiers <= 0 {
		return nil
	}
	var faces []MeshFace
	tierHeight := mesh.Height / float64(mesh.Tiers) * t.Scale
	sin, cos := math.Sincos(t.Yaw)
	rot := func(dx, y, dz float64) gamemath.Vec3 {
		return gamemath.V3(
			t.Position.X+dx*cos+dz*sin,
			y,
			t.Position.Z-dx*sin+dz*cos,
		)
	}
	turn := func(n gamemath.Vec3) gamemath.Vec3 {
		return gamemath.V3(n.X*cos+n.Z*sin, n.Y, -n.X*sin+n.Z*cos)
	}

	for i := 0; i < mesh.Tiers; i++ {
		frac := 0.0
		if mesh.Tiers > 1 {
			frac = float64(i) / float64(mesh.Tiers-1)
		}
		h := (mesh.BaseHalfExtent + (mesh.TopHalfExtent-mesh.BaseHalfExtent)*frac) * t.Scale
		y0 := t.Position.Y + float64(i)*tierHeight
		y1 := y0 + tierHeight

		quads := []MeshFace{
			{Corners: [4]gamemath.Vec3{rot(-h, y1, -h), rot(h, y1, -h), rot(h, y1, h), rot(-h, y1, h)}, Normal: turn(gamemath.V3(0, 1, 0)), Shade: 1},
			{Corners: [4]gamemath.Vec3{rot(-h, y0, h), rot(h, y0, h), rot(h, y1, h), rot(-h, y1, h)}, Normal: turn(gamemath.V3(0, 0, 1)), Shade: 0.7},
			{Corners: [4]gamemath.Vec3{rot(h, y0, -h), rot(-h, y0, -h), rot(-h, y1, -h), rot(h, y1, -h)}, Normal: turn(gamemath.V3(0, 0, -1)), Shade: 0.7},
			{Corners: [4]gamemath.Vec3{rot(h, y0, h), rot(h, y0, -h), rot(h, y1, -h), rot(h, y1, h)}, Normal: turn(gamemath.V3(1, 0, 0)), Shade: 0.82},
			{Corners: [4]gamemath.Vec3{rot(-h, y0, -h), rot(-h, y0, h), rot(-h, y1, h), rot(-h, y1, -h)}, Normal: turn(gamemath.V3(-1, 0, 0)), Shade: 0.82},
		}
		for _, q := range quads {
			center := q.Corners[0].Add(q.Corners[1]).Add(q.Corners[2]).Add(q.Corners[3]).Scale(0.25)
			if q.Normal.Dot(eye.Sub(center)) <= 0 {
				continue
			}
			q.Depth = gamemath.Distance(eye, center)
			faces = append(faces, q)
		}
	}

	// Painter's order: far faces first
	sort.SliceStable(faces, func(a, b int) bool {
		return faces[a].Depth > faces[b].Depth
	})
	return faces
}

// DrawMeshes draws textured static models such as the temple.
func DrawMeshes(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	lights := collectLights(e)
	eye := v.cam.Eye()

	components.Model.Each(e.World, func(entry *donburi.Entry) {
		model := components.Model.Get(entry)
		if model.Model == nil || model.Def.Mesh == nil || model.Texture == nil {
			return
		}
		t := components.Transform.Get(entry)
		texW := float32(model.Texture.Bounds().Dx())

		for _, f := range MeshFaces(t, model.Def.Mesh, eye) {
			drawFace(screen, v, model.Texture, f, lights, texW)
		}
	})
}

func drawFace(screen *ebiten.Image, v *view, tex *ebiten.Image, f MeshFace, lights []components.LightData, texW float32) {
	uLen := gamemath.Distance(f.Corners[0], f.Corners[1]) / meshTextureUnits
	vLen := gamemath.Distance(f.Corners[1], f.Corners[2]) / meshTextureUnits
	uv := [4][2]float32{
		{0, float32(vLen)},
		{float32(uLen), float32(vLen)},
		{float32(uLen), 0},
		{0, 0},
	}

	center := f.Corners[0].Add(f.Corners[2]).Scale(0.5)
	b := float32(Brightness(lights, center, f.Normal) * f.Shade)

	for i, c := range f.Corners {
		p, ok := v.project(c)
		if !ok {
			return
		}
		meshVertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   uv[i][0] * texW,
			SrcY:   uv[i][1] * texW,
			ColorR: b,
			ColorG: b,
			ColorB: b,
			ColorA: 1,
		}
	}
	screen.DrawTriangles(meshVertices, meshIndices, tex, trianglesOp)
}

// billboard is one sprite queued for depth sorting.
type billboard struct {
	entry *donburi.Entry
	proj  gamemath.Projection
}

// DrawModels draws animated models as camera-facing sprites, far to near.
func DrawModels(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	lights := collectLights(e)
	eye := v.cam.Eye()

	var queue []billboard
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Model) || !entry.HasComponent(components.Transform) {
			return
		}
		p, ok := v.project(components.Transform.Get(entry).Position)
		if !ok {
			return
		}
		queue = append(queue, billboard{entry: entry, proj: p})
	})
	sort.SliceStable(queue, func(a, b int) bool {
		return queue[a].proj.Depth > queue[b].proj.Depth
	})

	for _, bb := range queue {
		drawBillboard(screen, v, bb, lights, eye)
	}
}

func drawBillboard(screen *ebiten.Image, v *view, bb billboard, lights []components.LightData, eye gamemath.Vec3) {
	entry := bb.entry
	model := components.Model.Get(entry)
	anim := components.Animation.Get(entry)
	t := components.Transform.Get(entry)
	if model.Model == nil {
		return
	}

	frame, ok := anim.CurrentFrame()
	if !ok {
		return
	}
	img := model.Frame(anim.Current, frame)
	if img == nil {
		return
	}

	fw, fh := float64(model.Def.FrameWidth), float64(model.Def.FrameHeight)
	scale := model.Def.UnitHeight * t.Scale * bb.proj.Scale / fh

	geo := ebiten.GeoM{}
	// Anchor at bottom-center so feet sit on the model's position
	geo.Translate(-fw/2, -fh)
	if v.cam.FacesScreenLeft(t.Yaw) {
		geo.Scale(-1, 1)
	}
	geo.Scale(scale, scale)
	geo.Translate(bb.proj.X, bb.proj.Y)

	brightness := Brightness(lights, t.Position, eye.Sub(t.Position))
	var flash float32
	if entry.HasComponent(components.Flash) {
		if f := components.Flash.Get(entry); f.Duration > 0 {
			flash = f.Amount
		}
	}

	if assets.LitShader == nil {
		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		b := float32(brightness)
		drawOp.ColorScale.Scale(b, b, b, 1)
		screen.DrawImage(img, drawOp)
		return
	}

	shaderOp.GeoM = geo
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"Brightness": float32(brightness),
		"Flash":      flash,
	}
	bounds := img.Bounds()
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), assets.LitShader, shaderOp)
}
