package factory

import (
	"github.com/uzimpp/elemental-dungeon-sub000/archetypes"
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/uzimpp/elemental-dungeon-sub000/components"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, arena *assets.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Arena: arena})
	return level
}
