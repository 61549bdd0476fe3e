package gamemath

import "math"

// nearPlane is the closest camera-space depth that still gets drawn.
const nearPlane = 0.1

var worldUp = Vec3{Y: 1}

// OrbitCamera looks at Target from Distance away. Yaw turns around the
// vertical axis (0 puts the camera on the +Z side) and Pitch raises it above
// the ground plane. FOV is the vertical field of view in radians.
type OrbitCamera struct {
	Target   Vec3
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64
}

// Projection is a world point mapped to the screen.
type Projection struct {
	X, Y  float64
	Scale float64 // screen pixels per world unit at this depth
	Depth float64
}

// Eye returns the camera position in world space.
func (c OrbitCamera) Eye() Vec3 {
	cp := math.Cos(c.Pitch)
	offset := Vec3{
		X: math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Yaw) * cp,
	}
	return c.Target.Add(offset.Scale(c.Distance))
}

// Basis returns the camera's right, up and forward unit vectors.
func (c OrbitCamera) Basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Eye()).Normalized()
	right = forward.Cross(worldUp).Normalized()
	up = right.Cross(forward)
	return right, up, forward
}

// Project maps p onto a width x height screen. ok is false for points behind
// the near plane.
func (c OrbitCamera) Project(p Vec3, width, height float64) (Projection, bool) {
	right, up, forward := c.Basis()
	rel := p.Sub(c.Eye())

	depth := rel.Dot(forward)
	if depth < nearPlane {
		return Projection{}, false
	}

	focal := (height / 2) / math.Tan(c.FOV/2)
	scale := focal / depth
	return Projection{
		X:     width/2 + rel.Dot(right)*scale,
		Y:     height/2 - rel.Dot(up)*scale,
		Scale: scale,
		Depth: depth,
	}, true
}

// FacesScreenLeft reports whether a character with the given yaw appears to
// look toward the left edge of the screen from this camera.
func (c OrbitCamera) FacesScreenLeft(yaw float64) bool {
	right, _, _ := c.Basis()
	facing := Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
	return facing.Dot(right) < 0
}
