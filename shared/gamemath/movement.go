package gamemath

import "math"

// FacingStep is the angular resolution of character facing (8 directions).
const FacingStep = math.Pi / 4

// MoveDirection combines held directional inputs into a unit vector on the
// ground plane. Forward is -Z. Opposing inputs cancel each other; when nothing
// remains ok is false.
func MoveDirection(left, right, forward, back bool) (dx, dz float64, ok bool) {
	if left {
		dx--
	}
	if right {
		dx++
	}
	if forward {
		dz--
	}
	if back {
		dz++
	}
	if dx == 0 && dz == 0 {
		return 0, 0, false
	}
	l := math.Hypot(dx, dz)
	return dx / l, dz / l, true
}

// FacingYaw converts a ground direction into a yaw angle snapped to FacingStep.
// +Z is yaw 0, +X is pi/2, -X is -pi/2 and -Z is pi.
func FacingYaw(dx, dz float64) float64 {
	yaw := math.Atan2(dx, dz)
	snapped := math.Round(yaw/FacingStep) * FacingStep
	// keep straight-ahead as +pi rather than -pi
	if snapped <= -math.Pi {
		snapped = math.Pi
	}
	return snapped
}

// WrapAngle maps an angle into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
