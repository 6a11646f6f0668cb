package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is the circular footprint every combat entity and projectile
// shares. Position is the circle center.
type BodyData struct {
	Position math.Vec2
	Radius   float64
	Speed    float64
	// Facing is the last non-zero movement or aim direction, unit length.
	Facing math.Vec2
	// Alive stays true through the death animation and flips once it ends.
	Alive bool
	// Seq orders entities by creation.
	Seq uint64
}

var Body = donburi.NewComponentType[BodyData]()
