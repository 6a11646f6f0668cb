package components

import "github.com/yohamta/donburi"

// InputData is the player's intent for the next frame, filled by whatever
// drives the player (keyboard, tests, replays).
type InputData struct {
	MoveX, MoveY float64
	Sprint       bool
	Dash         bool

	// Cast requests CastSlot at the target point.
	Cast             bool
	CastSlot         int
	TargetX, TargetY float64
}

var Input = donburi.NewComponentType[InputData]()
