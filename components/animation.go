package components

import (
	"github.com/uzimpp/elemental-dungeon-sub000/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.StateMachine
}

var Animation = donburi.NewComponentType[AnimationData]()
