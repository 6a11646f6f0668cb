package systems

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

func distance(a, b math2.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// direction returns the unit vector from a to b and the distance between
// them. Coincident points give a zero vector.
func direction(a, b math2.Vec2) (math2.Vec2, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return math2.Vec2{}, 0
	}
	return math2.Vec2{X: dx / d, Y: dy / d}, d
}

func normalize(x, y float64) math2.Vec2 {
	d := math.Hypot(x, y)
	if d == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{X: x / d, Y: y / d}
}

func isZero(v math2.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// ClampToArena keeps the whole body inside the arena.
func ClampToArena(body *components.BodyData, arena *assets.Arena) {
	if arena == nil {
		return
	}
	body.Position.X = clamp(body.Position.X, body.Radius, arena.Width-body.Radius)
	body.Position.Y = clamp(body.Position.Y, body.Radius, arena.Height-body.Radius)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// MoveToward steps e toward (x, y) by at most its speed times dt and
// returns the distance that was left before the step.
func MoveToward(w donburi.World, e *donburi.Entry, x, y, dt float64) float64 {
	body := components.Body.Get(e)
	dir, dist := direction(body.Position, math2.Vec2{X: x, Y: y})
	if dist == 0 {
		return 0
	}
	step := math.Min(body.Speed*dt, dist)
	body.Facing = dir
	moveBy(w, e, dir.X*step, dir.Y*step)
	return dist
}

// moveBy translates e, clamps it to the arena and syncs its box.
func moveBy(w donburi.World, e *donburi.Entry, dx, dy float64) {
	body := components.Body.Get(e)
	body.Position.X += dx
	body.Position.Y += dy
	ClampToArena(body, arenaOf(w))
	syncObject(e)
}

func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	body := components.Body.Get(e)
	components.Object.Get(e).Place(body.Position.X, body.Position.Y)
}
