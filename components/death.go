package components

import "github.com/yohamta/donburi"

// DeathData is attached to every combat entity from spawn so that starting
// a death sequence never changes the entity's archetype mid-frame.
// Timer counts down in seconds while Dying is set.
type DeathData struct {
	Dying bool
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
