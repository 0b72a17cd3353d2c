// Package gamemath holds the small pieces of math every animation system
// shares: easing curves, exponential smoothing and the decorative oscillators.
package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Smoothstep is the cubic 3x²−2x³ with zero slope at both ends.
func Smoothstep(x float64) float64 {
	x = Clamp01(x)
	return x * x * (3 - 2*x)
}

// EaseInOutCubic accelerates over the first half and decelerates over the second.
// t is clamped to [0,1]; the result is exactly 0 and 1 at the ends.
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t == 1 {
		return 1
	}
	return float64(ease.InOutCubic(float32(t), 0, 1, 1))
}

// Approach moves x toward target by the fraction k. For k in (0,1) it never overshoots.
func Approach(x, target, k float64) float64 {
	return x + (target-x)*k
}

// ApproachRate picks the rise rate when target is above x and the fall rate otherwise.
func ApproachRate(x, target, rise, fall float64) float64 {
	if target > x {
		return Approach(x, target, rise)
	}
	return Approach(x, target, fall)
}

// Lerp returns a at t=0 and exactly b at t=1.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpVec3 is Lerp per component.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// Clamp01 clamps x to [0,1].
func Clamp01(x float64) float64 {
	return mgl64.Clamp(x, 0, 1)
}
