package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ErrUnknownModel is returned for a key missing from config.Models.
var ErrUnknownModel = errors.New("unknown model")

// Model is a loaded model: clip sheets for billboards or a texture for meshes.
type Model struct {
	Key     string
	Def     config.ModelDef
	Sheets  map[config.StateID]*ebiten.Image
	Texture *ebiten.Image

	frames map[config.StateID]map[int]*ebiten.Image
}

// ModelFiles lists the files a model needs, resolved against an image FS.
type ModelFiles struct {
	Clips   map[config.StateID]string
	Texture string
}

// ResolveModelFiles checks that the model directory holds every required clip.
// Optional clips that are missing are left out.
func ResolveModelFiles(fsys fs.FS, key string) (*ModelFiles, error) {
	def, ok := config.Models[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, key)
	}

	dir := path.Join("images", def.Dir)
	if _, err := fs.Stat(fsys, dir); err != nil {
		return nil, fmt.Errorf("model directory %s: %w", dir, err)
	}

	files := &ModelFiles{Clips: make(map[config.StateID]string)}
	for state, clip := range def.Clips {
		p := path.Join(dir, state.String()+".png")
		if _, err := fs.Stat(fsys, p); err != nil {
			if clip.Optional {
				continue
			}
			return nil, fmt.Errorf("clip %s: %w", p, err)
		}
		files.Clips[state] = p
	}

	if def.Mesh != nil {
		p := path.Join(dir, def.Mesh.Texture)
		if _, err := fs.Stat(fsys, p); err != nil {
			return nil, fmt.Errorf("texture %s: %w", p, err)
		}
		files.Texture = p
	}
	return files, nil
}

// LoadModel decodes the model's sheets from the embedded images.
func LoadModel(key string) (*Model, error) {
	files, err := ResolveModelFiles(imageFS, key)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Key:    key,
		Def:    config.Models[key],
		Sheets: make(map[config.StateID]*ebiten.Image, len(files.Clips)),
		frames: make(map[config.StateID]map[int]*ebiten.Image),
	}
	for state, p := range files.Clips {
		img, err := imageLoader.LoadImage(p)
		if err != nil {
			return nil, err
		}
		m.Sheets[state] = img
	}
	if files.Texture != "" {
		if m.Texture, err = imageLoader.LoadImage(files.Texture); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Frame returns a cached sub-image for one frame of a clip sheet.
func (m *Model) Frame(state config.StateID, index int) *ebiten.Image {
	sheet := m.Sheets[state]
	if sheet == nil {
		return nil
	}
	if img, ok := m.frames[state][index]; ok {
		return img
	}

	fw, fh := m.Def.FrameWidth, m.Def.FrameHeight
	sx := index * fw
	if sx+fw > sheet.Bounds().Dx() {
		return nil
	}
	frame := sheet.SubImage(image.Rect(sx, 0, sx+fw, fh)).(*ebiten.Image)

	if m.frames[state] == nil {
		m.frames[state] = make(map[int]*ebiten.Image)
	}
	m.frames[state][index] = frame
	return frame
}

// LoadEnvironment loads a sky image from images/environment.
func LoadEnvironment(name string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(path.Join("images", "environment", name))
}

// LoadArena parses the embedded arena map.
func LoadArena() (*leveldata.Arena, error) {
	return leveldata.LoadArena(levelFS, config.Arena.MapPath)
}

// ImageLoader decodes embedded images once and caches them.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

var (
	imageLoader = NewImageLoader(imageFS)
)
