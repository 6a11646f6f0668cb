package systems

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	cfg "github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/uzimpp/elemental-dungeon-sub000/metrics"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

// timerEpsilon absorbs float drift when a countdown lands on zero.
const timerEpsilon = 1e-9

func settingsOf(w donburi.World) *components.SettingsData {
	return components.Settings.Get(components.Settings.MustFirst(w))
}

func configOf(w donburi.World) *cfg.Config {
	return settingsOf(w).Config
}

func metricsOf(w donburi.World) *metrics.Collectors {
	return settingsOf(w).Metrics
}

func clockOf(w donburi.World) *components.ClockData {
	return components.Clock.Get(components.Clock.MustFirst(w))
}

func waveOf(w donburi.World) *components.WaveData {
	return components.Wave.Get(components.Wave.MustFirst(w))
}

func spaceOf(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w))
}

func arenaOf(w donburi.World) *assets.Arena {
	return components.Level.Get(components.Level.MustFirst(w)).Arena
}

func sessionOf(w donburi.World) *components.SessionData {
	e, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	return components.Session.Get(e)
}

// Now returns the simulation clock in seconds.
func Now(w donburi.World) float64 {
	return clockOf(w).Now
}

// PlayerEntry returns the player, if the world has one.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// IsGameOver reports whether the player has died.
func IsGameOver(w donburi.World) bool {
	e, ok := components.GameOver.First(w)
	return ok && components.GameOver.Get(e).Over
}

func IsPaused(w donburi.World) bool {
	e, ok := components.Pause.First(w)
	return ok && components.Pause.Get(e).IsPaused
}

// TogglePause flips the pause flag and returns the new value.
func TogglePause(w donburi.World) bool {
	e, ok := components.Pause.First(w)
	if !ok {
		return false
	}
	p := components.Pause.Get(e)
	p.IsPaused = !p.IsPaused
	return p.IsPaused
}

// Enemies lists live enemy entries, dying ones included, in spawn order.
func Enemies(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sortBySeq(out)
	return out
}

// Summons lists the player's summons oldest first.
func Summons(w donburi.World) []*donburi.Entry {
	return deckEntries(w, func(d *components.DeckData) []donburi.Entity { return d.Summons })
}

// Projectiles lists the player's projectiles in fire order.
func Projectiles(w donburi.World) []*donburi.Entry {
	return deckEntries(w, func(d *components.DeckData) []donburi.Entity { return d.Projectiles })
}

func deckEntries(w donburi.World, pick func(*components.DeckData) []donburi.Entity) []*donburi.Entry {
	player, ok := PlayerEntry(w)
	if !ok {
		return nil
	}
	ids := pick(components.Deck.Get(player))
	out := make([]*donburi.Entry, 0, len(ids))
	for _, id := range ids {
		if w.Valid(id) {
			out = append(out, w.Entry(id))
		}
	}
	return out
}

func sortBySeq(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Body.Get(entries[i]).Seq < components.Body.Get(entries[j]).Seq
	})
}

// isTargetable reports whether e can be chosen as a target or take damage.
func isTargetable(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return false
	}
	if !components.Body.Get(e).Alive {
		return false
	}
	if e.HasComponent(components.Death) && components.Death.Get(e).Dying {
		return false
	}
	return true
}

func kindOf(e *donburi.Entry) components.Kind {
	switch {
	case e.HasComponent(tags.Player):
		return components.KindPlayer
	case e.HasComponent(tags.Enemy):
		return components.KindEnemy
	case e.HasComponent(tags.Summon):
		return components.KindSummon
	default:
		return components.KindProjectile
	}
}

// removeEntity drops e from the space and the world.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			spaceOf(w).Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
