package systems

import (
	"slices"

	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/effects"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

// UpdateDeaths plays out every death sequence and marks the entity dead
// once its dying animation has run.
func UpdateDeaths(w donburi.World, dt float64) {
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		body := components.Body.Get(e)
		if !death.Dying || !body.Alive {
			return
		}

		death.Timer -= dt
		if anim := components.Animation.Get(e); anim.StateMachine != nil {
			anim.Update(dt, 0, 0)
		}
		if death.Timer <= timerEpsilon {
			death.Timer = 0
			body.Alive = false
		}
	})
}

// PruneDead removes dead entities from the world and the deck. A dead
// player ends the run instead of being removed.
func PruneDead(w donburi.World, sink effects.Sink) {
	var dead []*donburi.Entry
	components.Body.Each(w, func(e *donburi.Entry) {
		if !components.Body.Get(e).Alive {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		if e.HasComponent(tags.Player) {
			endGame(w)
			continue
		}
		removeEntity(w, e)
	}

	if player, ok := PlayerEntry(w); ok {
		deck := components.Deck.Get(player)
		gone := func(id donburi.Entity) bool { return !w.Valid(id) }
		deck.Summons = slices.DeleteFunc(deck.Summons, gone)
		deck.Projectiles = slices.DeleteFunc(deck.Projectiles, gone)
	}
}

func endGame(w donburi.World) {
	e, ok := components.GameOver.First(w)
	if !ok {
		return
	}
	over := components.GameOver.Get(e)
	if over.Over {
		return
	}
	over.Over = true
	over.At = Now(w)
	recordWave(w, len(Enemies(w)))
}
