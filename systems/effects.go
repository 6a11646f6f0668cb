package systems

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/yohamta/donburi"
)

// UpdateEffects fades hit flashes.
func UpdateEffects(w donburi.World, dt float64) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		f := components.Flash.Get(e)
		if f.Remaining > 0 {
			f.Remaining = max(0, f.Remaining-dt)
		}
	})
}
