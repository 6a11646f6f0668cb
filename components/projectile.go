package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Skill       string
	Direction   math.Vec2
	Damage      float64
	BlastRadius float64
	Pull        bool
	Color       color.RGBA
}

var Projectile = donburi.NewComponentType[ProjectileData]()
