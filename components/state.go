package components

import (
	"github.com/uzimpp/elemental-dungeon-sub000/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	// StateTimer is the remaining lock time in seconds for sweep, hurt and
	// the player's cast actions.
	StateTimer float64
}

var State = donburi.NewComponentType[StateData]()
