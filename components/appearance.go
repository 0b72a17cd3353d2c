package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// TransformData is the orb's world transform after this frame's update
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler XYZ
	Quat     mgl64.Quat
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()

// UniformsData mirrors the values the orb shader reads
type UniformsData struct {
	WaveAmp   float64
	WaveTime  float64
	HitPoint  mgl64.Vec3
	NoiseAmp  float64 // [0,1]
	NoiseTime float64
	PulseGlow float64
	Color     colorful.Color
	Opacity   float64
}

var Uniforms = donburi.NewComponentType[UniformsData]()

// CoreData is the inner glowing sphere
type CoreData struct {
	Opacity float64
	Scale   float64
}

var Core = donburi.NewComponentType[CoreData]()
