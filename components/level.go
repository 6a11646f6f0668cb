package components

import (
	"github.com/uzimpp/elemental-dungeon-sub000/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *assets.Arena
}

var Level = donburi.NewComponentType[LevelData]()
