package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position      mgl64.Vec3
	Target        mgl64.Vec3 // look-at point
	Up            mgl64.Vec3
	Quat          mgl64.Quat
	ManualControl bool // last value pushed to the external controls
}

var Camera = donburi.NewComponentType[CameraData]()

// FlyToData is the single camera transition, reused for every fly-in and fly-out
type FlyToData struct {
	From, To         mgl64.Vec3
	LookFrom, LookTo mgl64.Vec3
	T                float64 // [0,1]
	Active           bool
	Returning        bool // flying back to the saved pose; re-enables manual control when done
}

var FlyTo = donburi.NewComponentType[FlyToData]()

// IdleSwayData tracks the drift-free ambient camera wobble
type IdleSwayData struct {
	Weight float64
	Amp    mgl64.Vec3
	Freq   mgl64.Vec3
	Phase  mgl64.Vec3
	Prev   mgl64.Vec3 // offset applied last frame
}

var IdleSway = donburi.NewComponentType[IdleSwayData]()

// DepthOfFieldData holds the smoothed post-processing parameters
type DepthOfFieldData struct {
	Focus    float64
	Aperture float64
}

var DepthOfField = donburi.NewComponentType[DepthOfFieldData]()
