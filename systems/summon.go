package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
)

// UpdateSummons drives the player's summons against the nearest enemy.
func UpdateSummons(w donburi.World, dt float64, sink effects.Sink) {
	enemies := Enemies(w)
	for _, e := range Summons(w) {
		updateFighter(w, e, dt, enemies, sink)
	}
}
