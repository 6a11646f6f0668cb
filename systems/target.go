package systems

import (
	"math"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/yohamta/donburi"
)

// AcquireTarget returns the candidate nearest to self by center distance,
// skipping self and anything dead or dying. Ties go to the earlier
// candidate.
func AcquireTarget(self *donburi.Entry, candidates []*donburi.Entry) (*donburi.Entry, float64) {
	pos := components.Body.Get(self).Position

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if c == nil || c.Entity() == self.Entity() || !isTargetable(c) {
			continue
		}
		if d := distance(pos, components.Body.Get(c).Position); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, bestDist
}

// hostileTargets are what enemies may attack: the player first, then the
// summons oldest first.
func hostileTargets(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	if player, ok := PlayerEntry(w); ok {
		out = append(out, player)
	}
	return append(out, Summons(w)...)
}
