package archetypes

import (
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/uzimpp/elemental-dungeon-sub000/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Health,
		components.State,
		components.Animation,
		components.Death,
		components.Flash,
		components.Deck,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Health,
		components.State,
		components.Combat,
		components.Animation,
		components.Death,
		components.Flash,
	)
	Summon = newArchetype(
		tags.Summon,
		components.Summon,
		components.Body,
		components.Object,
		components.Health,
		components.State,
		components.Combat,
		components.Animation,
		components.Death,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Game = newArchetype(
		components.Settings,
		components.Clock,
		components.Wave,
		components.GameOver,
		components.Pause,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
