package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name string

	Stamina    float64
	MaxStamina float64
	// StaminaCooldown blocks regeneration after stamina runs out.
	StaminaCooldown float64
	Sprinting       bool
}

var Player = donburi.NewComponentType[PlayerData]()
