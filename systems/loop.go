package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/yohamta/donburi"
)

// Step advances the simulation by dt seconds. Nothing moves while the run
// is paused or over.
func Step(w donburi.World, dt float64, sink effects.Sink) {
	if IsGameOver(w) || IsPaused(w) {
		return
	}
	if sink == nil {
		sink = effects.Discard{}
	}

	clock := clockOf(w)
	clock.Now += dt
	clock.Frame++

	UpdateDeaths(w, dt)
	UpdateEnemies(w, dt, sink)
	UpdatePlayer(w, dt, sink)
	UpdateDeck(w, dt, sink)
	UpdateCollisions(w)
	PruneDead(w, sink)
	UpdateWaves(w, sink)
	UpdateEffects(w, dt)
}
