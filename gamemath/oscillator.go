package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lissajous returns a per-axis sinusoidal offset: sin on x and y, cos on z.
func Lissajous(t float64, amp, freq, phase mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Sin(t*freq[0]+phase[0]) * amp[0],
		math.Sin(t*freq[1]+phase[1]) * amp[1],
		math.Cos(t*freq[2]+phase[2]) * amp[2],
	}
}

// SineOffset returns sin(t*freq+phase)*amp*weight on every axis.
func SineOffset(t float64, amp, freq, phase mgl64.Vec3, weight float64) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Sin(t*freq[0]+phase[0]) * amp[0] * weight,
		math.Sin(t*freq[1]+phase[1]) * amp[1] * weight,
		math.Sin(t*freq[2]+phase[2]) * amp[2] * weight,
	}
}

// Breath is the breathing scale factor 1 + sin(t*speed+phase)*amp.
func Breath(t, speed, phase, amp float64) float64 {
	return 1 + math.Sin(t*speed+phase)*amp
}

// Pulse mixes two sines and maps the result onto [0,1].
// The second harmonic runs at phase*phase2.
func Pulse(t, phase, freq1, freq2, mix, phase2 float64) float64 {
	p1 := math.Sin(t*freq1 + phase)
	p2 := math.Sin(t*freq2 + phase*phase2)
	norm := 1 + mix
	if norm <= 0 {
		norm = 1
	}
	raw := (p1 + p2*mix) / norm
	return Clamp01(raw*0.5 + 0.5)
}
