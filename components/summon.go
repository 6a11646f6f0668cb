package components

import (
	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/yohamta/donburi"
)

type SummonData struct {
	Skill   string
	Element config.Element
}

var Summon = donburi.NewComponentType[SummonData]()
