package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
)

// UpdateEnemies moves every enemy toward the nearest of the player and the
// summons and attacks once in reach.
func UpdateEnemies(w donburi.World, dt float64, sink effects.Sink) {
	candidates := hostileTargets(w)
	for _, e := range Enemies(w) {
		updateFighter(w, e, dt, candidates, sink)
	}
}
