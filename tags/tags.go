package tags

import "github.com/yohamta/donburi"

var (
	Orb    = donburi.NewTag().SetName("Orb")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for screen-space picking
const (
	ResolvOrb    = "orb"
	ResolvCursor = "cursor"
)
