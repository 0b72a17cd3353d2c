package components

import (
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// OrbData identifies an orb and its immutable base placement
type OrbData struct {
	Index  int
	Origin mgl64.Vec3
	BaseR  float64
	AmpHi  float64
}

var Orb = donburi.NewComponentType[OrbData]()

// MorphData tracks interpolation between two shape coefficient sets
type MorphData struct {
	Coeffs       harmonics.Coeffs
	CoeffsTarget harmonics.Coeffs
	LerpT        float64 // [0,1); wraps to 0 when a new target is drawn
	Speed        float64 // LerpT per second
	Mixed        harmonics.Coeffs
}

var Morph = donburi.NewComponentType[MorphData]()

// WaveData tracks the hover ripple
type WaveData struct {
	Active   bool
	Elapsed  float64 // seconds since the ripple started
	Fade     float64 // [0,1]
	HitPoint mgl64.Vec3
	HasHit   bool
}

var Wave = donburi.NewComponentType[WaveData]()

// HoverData is the externally set hover flag and its smoothed value
type HoverData struct {
	Hovered bool
	T       float64 // [0,1]
}

var Hover = donburi.NewComponentType[HoverData]()

// MotionData holds the idle motion parameters fixed at creation
type MotionData struct {
	SwayAmp   mgl64.Vec3
	SwayFreq  mgl64.Vec3
	SwayPhase mgl64.Vec3

	RotSpeed mgl64.Vec3 // radians per frame

	BreathSpeed float64
	BreathPhase float64
	BreathAmp   float64
}

var Motion = donburi.NewComponentType[MotionData]()

// PulseData is the two-harmonic glow oscillator
type PulseData struct {
	Phase float64
	Freq1 float64
	Freq2 float64
	Mix   float64 // weight of the second harmonic
	Amp   float64
	Value float64 // last output, [0,1]
}

var Pulse = donburi.NewComponentType[PulseData]()
