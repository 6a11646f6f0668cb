package systems

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/yohamta/donburi"
)

// ResolveOverlaps pushes every overlapping pair of bodies apart along the
// line between their centers, each by half the penetration depth. Bodies
// sharing a center separate along +X.
func ResolveOverlaps(bodies []*components.BodyData) {
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			dx := b.Position.X - a.Position.X
			dy := b.Position.Y - a.Position.Y
			dist := math.Hypot(dx, dy)
			minDist := a.Radius + b.Radius
			if dist >= minDist {
				continue
			}

			nx, ny := 1.0, 0.0
			if dist > 0 {
				nx, ny = dx/dist, dy/dist
			}
			push := (minDist - dist) / 2
			a.Position.X -= nx * push
			a.Position.Y -= ny * push
			b.Position.X += nx * push
			b.Position.Y += ny * push
		}
	}
}

// UpdateCollisions separates the player, summons and enemies, dying ones
// included, then re-buckets their boxes in the space.
func UpdateCollisions(w donburi.World) {
	var entries []*donburi.Entry
	if player, ok := PlayerEntry(w); ok {
		entries = append(entries, player)
	}
	entries = append(entries, Summons(w)...)
	entries = append(entries, Enemies(w)...)

	bodies := make([]*components.BodyData, 0, len(entries))
	kept := entries[:0]
	for _, e := range entries {
		body := components.Body.Get(e)
		if !body.Alive {
			continue
		}
		kept = append(kept, e)
		bodies = append(bodies, body)
	}

	ResolveOverlaps(bodies)
	for _, e := range kept {
		syncObject(e)
	}
}
