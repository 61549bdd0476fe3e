package config

// LoopMode mirrors how a clip behaves when it reaches its last frame.
type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce
)

type AnimationDef struct {
	First int
	Last  int
	Speed float32 // seconds per frame
	Loop  LoopMode
	// ClampWhenFinished holds the last frame after a LoopOnce clip ends.
	ClampWhenFinished bool
	// Optional clips may be missing from the model directory.
	Optional bool
}

// MeshDef describes a stepped pyramid built from stacked boxes. Sizes are in
// model units and get multiplied by the entity scale.
type MeshDef struct {
	Tiers          int
	BaseHalfExtent float64
	TopHalfExtent  float64
	Height         float64
	Texture        string // image inside the model directory
}

// ModelDef describes a model. Billboards have sprite sheet clips; meshes have
// a MeshDef and a texture. UnitHeight is how tall a billboard stands in world
// units at scale 1.
type ModelDef struct {
	Dir         string
	FrameWidth  int
	FrameHeight int
	UnitHeight  float64
	CastShadow  bool
	ShadowWidth float64 // ground footprint of the shadow at scale 1
	Clips       map[StateID]AnimationDef
	Mesh        *MeshDef
}

const (
	ModelTemple = "temple"
	ModelDragon = "dragon"
	ModelKnight = "knight"
)

// Models maps a model key to its definition.
var Models = map[string]ModelDef{
	ModelTemple: {
		Dir:         "temple",
		CastShadow:  true,
		ShadowWidth: 700,
		Mesh: &MeshDef{
			Tiers:          4,
			BaseHalfExtent: 300,
			TopHalfExtent:  180,
			Height:         55,
			Texture:        "stone.png",
		},
	},
	ModelDragon: {
		Dir:         "dragon",
		FrameWidth:  64,
		FrameHeight: 64,
		UnitHeight:  2.2,
		CastShadow:  true,
		ShadowWidth: 2.0,
		Clips: map[StateID]AnimationDef{
			Idle: {First: 0, Last: 3, Speed: 0.2, Loop: LoopRepeat},
			Hit:  {First: 0, Last: 3, Speed: 0.08, Loop: LoopOnce, ClampWhenFinished: true},
			Die:  {First: 0, Last: 3, Speed: 0.15, Loop: LoopOnce, ClampWhenFinished: true, Optional: true},
		},
	},
	ModelKnight: {
		Dir:         "knight",
		FrameWidth:  32,
		FrameHeight: 48,
		UnitHeight:  1.6,
		CastShadow:  true,
		ShadowWidth: 0.8,
		Clips: map[StateID]AnimationDef{
			Idle:    {First: 0, Last: 1, Speed: 0.5, Loop: LoopRepeat},
			Walk:    {First: 0, Last: 3, Speed: 0.15, Loop: LoopRepeat, Optional: true},
			Running: {First: 0, Last: 3, Speed: 0.1, Loop: LoopRepeat},
			Attack:  {First: 0, Last: 3, Speed: 0.08, Loop: LoopOnce, ClampWhenFinished: true},
		},
	},
}
